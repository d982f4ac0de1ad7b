package models

import "time"

// Candidate is an application sent from the public contact form.
type Candidate struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:200" json:"name"`
	Email    string    `gorm:"size:255" json:"email"`
	Position string    `gorm:"size:100" json:"position"`
	Message  string    `gorm:"type:text" json:"message"`
	Date     time.Time `gorm:"index" json:"date"`
}

func (Candidate) TableName() string { return "candidates" }
