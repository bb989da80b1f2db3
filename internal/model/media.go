package model

import "time"

type Book struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Author      string  `gorm:"size:255;not null" json:"author"`
	AgeGroup    string  `gorm:"size:50;not null;default:5-12" json:"age_group"`
	Category    string  `gorm:"size:100" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
	Link        string  `gorm:"size:500;uniqueIndex;not null" json:"link"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`

	// Username of the librarian that contributed the entry
	Source string `gorm:"size:50;index" json:"source"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Video struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Creator     string  `gorm:"size:255;not null" json:"creator"`
	AgeGroup    string  `gorm:"size:50;not null;default:5-12" json:"age_group"`
	Category    string  `gorm:"size:100" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
	Link        string  `gorm:"size:500;uniqueIndex;not null" json:"link"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	Source      string  `gorm:"size:50;index" json:"source"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
