package entities

import "time"

// Film is only reachable through ratings; there is no film API surface.
type Film struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:100;not null;index" json:"title"`
	Summary     string     `gorm:"type:text" json:"summary,omitempty"`
	ReleaseDate *time.Time `gorm:"type:date" json:"release_date,omitempty"`
	Duration    *int       `gorm:"type:numeric(3,0)" json:"duration,omitempty"`
	Genre       string     `gorm:"size:30" json:"genre,omitempty"`
	Ratings     []Rating   `gorm:"foreignKey:FilmID" json:"ratings,omitempty"`
}
