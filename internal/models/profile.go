package models

import (
	"time"
)

// SocialLinks holds the optional social network URLs cached on a profile.
// The whole object is replaced on every profile update, mirroring the
// client which always submits the full set.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ProfileAuthor is the denormalized author block rendered on profile bodies.
// It reads from the users table but carries only the public columns; email
// and password never reach a profile response.
type ProfileAuthor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TableName maps the author view onto the users table.
func (ProfileAuthor) TableName() string {
	return "users"
}

// Experience is a single career entry on a profile. Dates arrive from the
// client as plain form strings (e.g. "2019-02-03") and are stored verbatim.
type Experience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `gorm:"not null" json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// Education is a single education entry on a profile.
type Education struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"not null;index" json:"-"`
	School       string    `gorm:"not null" json:"school"`
	Degree       string    `gorm:"not null" json:"degree"`
	FieldOfStudy string    `gorm:"not null" json:"fieldofstudy"`
	From         string    `gorm:"not null" json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// Profile is the career profile attached to a user. Exactly one profile may
// exist per user; the service layer enforces this with a lookup-before-insert
// upsert and the unique index backs it up at the store level.
type Profile struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	User           *ProfileAuthor `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status         string         `gorm:"not null" json:"status"`
	Company        string         `json:"company,omitempty"`
	Website        string         `json:"website,omitempty"`
	Location       string         `json:"location,omitempty"`
	Bio            string         `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string         `json:"githubusername,omitempty"`
	Skills         []string       `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks    `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience   `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education    `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt      time.Time      `json:"date"`
	UpdatedAt      time.Time      `json:"-"`
}
