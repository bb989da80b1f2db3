package model

type Interest struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

// DefaultInterests is the controlled vocabulary children pick from
var DefaultInterests = []string{
	"FICTION",
	"NONFICTION",
	"COMIC",
	"ART",
	"GEOGRAPHY",
	"SCIENCE",
	"ANIMALS",
	"HISTORY",
	"FANTASY",
	"TECHNOLOGY",
	"SPORTS",
	"COOKING",
}
