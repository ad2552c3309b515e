package entities

// Rating links a user to a film they rated. Composite primary key, one
// rating per user and film. Deleting is restricted while ratings exist.
type Rating struct {
	UserID int   `gorm:"primaryKey" json:"user_id"`
	FilmID int   `gorm:"primaryKey" json:"film_id"`
	Note   int   `json:"note"`
	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Film   *Film `gorm:"foreignKey:FilmID;constraint:OnDelete:RESTRICT" json:"-"`
}
