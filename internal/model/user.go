// Package model defines database models
package model

import "time"

// Role names seeded at startup. Stored as strings instead of a native
// enum so sqlite and postgres behave the same.
const (
	RoleAdmin     = "ADMIN"
	RoleParent    = "PARENT"
	RoleChild     = "CHILD"
	RoleLibrarian = "LIBRARIAN"
)

const (
	TierFree = "FREE"
	TierPro  = "PRO"
)

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`

	// Children have no email, so this must stay a pointer for the
	// unique index to allow multiple NULLs
	Email        *string `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PasswordHash string  `gorm:"size:100;not null" json:"-"`

	FirstName string     `gorm:"size:50;not null" json:"first_name"`
	LastName  string     `gorm:"size:50;not null" json:"last_name"`
	Country   string     `gorm:"size:50" json:"country,omitempty"`
	Gender    string     `gorm:"size:20" json:"gender,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Race      string     `gorm:"size:50" json:"race,omitempty"`

	// Only parents carry a subscription tier
	Tier string `gorm:"size:30" json:"tier,omitempty"`

	RoleID uint `gorm:"not null;index" json:"-"`
	Role   Role `json:"role"`

	IsVerified        bool `gorm:"not null;default:false;index" json:"is_verified"`
	LibrarianVerified bool `gorm:"not null;default:false" json:"librarian_verified"`

	// Children point back at the parent account that owns them.
	// NULL for every other role
	PrimaryParentID *uint `gorm:"index" json:"primary_parent_id,omitempty"`

	Interests []Interest `gorm:"many2many:child_interests" json:"interests,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
