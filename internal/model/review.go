package model

import "time"

const (
	ReviewTypeBook  = "BOOK"
	ReviewTypeVideo = "VIDEO"
	ReviewTypeApp   = "APP"
)

type Review struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`
	Review string `gorm:"type:text;not null" json:"review"`
	Stars  int    `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`

	ReviewType string `gorm:"size:50;not null;index" json:"review_type"`

	// ID of the reviewed book or video. 0 for app-level reviews
	ReviewableID uint `json:"reviewable_id"`

	CreatedAt time.Time `json:"created_at"`
}
