package models

import (
	"strconv"
	"time"
)

// Post is a feed entry. Name and Avatar are a snapshot of the author's
// profile fields at creation time; later profile edits do not change past
// posts. Likes and comments are embedded JSON lists, newest-first.
type Post struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user"`
	Text      string        `gorm:"type:text;not null" json:"text"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar"`
	Likes     List[Like]    `gorm:"type:jsonb" json:"likes"`
	Comments  List[Comment] `gorm:"type:jsonb" json:"comments"`
	CreatedAt time.Time     `json:"date"`
	UpdatedAt time.Time     `json:"-"`
}

// Like marks one user's like on a post. A user may appear at most once in a
// post's like list; the list is keyed by the liker's user ID.
type Like struct {
	UserID uint `json:"user"`
}

// Key returns the stringified liker ID.
func (l Like) Key() string { return LikeKey(l.UserID) }

// LikeKey builds the list key for a liker's user ID.
func LikeKey(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

// Comment is one embedded comment with its own generated identifier and an
// author name/avatar snapshot taken when the comment was created.
type Comment struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Key returns the comment identifier.
func (c Comment) Key() string { return c.ID }
