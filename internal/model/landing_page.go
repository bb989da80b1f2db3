package model

// LandingPage holds one editable text row of the public landing page:
// the introduction, 6 features, 3 how-it-works steps and 2 pricing tiers
type LandingPage struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DisplayType string `gorm:"size:50;not null" json:"display_type"`
	DisplayText string `gorm:"size:255;not null" json:"display_text"`
}
