package models

import (
	"time"
)

// Like marks a single user's endorsement of a post. The composite unique
// index is what makes the like/unlike toggle race-free: inserts go through
// ON CONFLICT DO NOTHING and a zero rows-affected result means the user
// had already liked the post.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user"`
	CreatedAt time.Time `json:"-"`
}

// Comment is a reply embedded in a post's comment list. Name and avatar are
// snapshots of the author at comment time, never re-joined against the user
// record on read.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post is a short status update. Author name and avatar are captured from
// the user record at creation time and deliberately not kept in sync with
// later profile edits.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
