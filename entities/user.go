package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents one account of the film rating service. The id is
// assigned by the database and must never be set by clients; the email is
// unique across all users and is persisted lower-cased (see BeforeSave).
type User struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	LastName   string    `gorm:"size:50" json:"last_name,omitempty"`
	FirstName  string    `gorm:"size:50" json:"first_name,omitempty"`
	Mobile     string    `gorm:"type:char(10)" json:"mobile,omitempty" binding:"omitempty,startswith=0,number,len=10"`
	Email      string    `gorm:"size:100;not null;uniqueIndex" json:"email" binding:"required,email,min=6,max=100"`
	Password   string    `gorm:"size:64;not null" json:"password" binding:"required,max=64"`
	Street     string    `gorm:"size:200" json:"street,omitempty"`
	PostalCode string    `gorm:"type:char(5)" json:"postal_code,omitempty"`
	City       string    `gorm:"size:50" json:"city,omitempty"`
	Country    string    `gorm:"size:50" json:"country,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	CreatedAt  time.Time `gorm:"type:date;default:now()" json:"created_at"`
	Ratings    []Rating  `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}

// BeforeSave lower-cases the email so the unique index applies to the
// normalized form.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	u.Email = strings.ToLower(u.Email)
	return
}
