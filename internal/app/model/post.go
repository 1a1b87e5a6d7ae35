package model

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Title string `gorm:"type:varchar(100);not null" json:"title"`
	Body  string `gorm:"type:text;not null" json:"body"`

	AuthorID uint `gorm:"not null;index" json:"authorId"`
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	// Denormalized like counter, kept consistent with the likes table inside
	// the like repository's transactions.
	LikesCount int `gorm:"default:0" json:"likesCount"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// Like joins a user and a post. At most one row per (user, post) pair,
// enforced by the composite unique index.
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	PostID uint `gorm:"not null;index:idx_post_user_like,unique" json:"postId"`
	UserID uint `gorm:"not null;index:idx_post_user_like,unique" json:"userId"`

	Post Post `gorm:"foreignKey:PostID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}

// CreatePostRequest is the post creation payload
type CreatePostRequest struct {
	Title string `json:"title" binding:"required,max=100"`
	Body  string `json:"body" binding:"required"`
}

// UpdatePostRequest carries the allow-listed mutable post fields
type UpdatePostRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,max=100"`
	Body  *string `json:"body,omitempty"`
}
