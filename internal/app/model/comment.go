package model

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`

	PostID uint `gorm:"not null;index" json:"postId"`
	Post   Post `gorm:"foreignKey:PostID" json:"-"`

	AuthorID uint `gorm:"not null;index" json:"authorId"`
	Author   User `gorm:"foreignKey:AuthorID" json:"author"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest is the comment creation payload
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateCommentRequest carries the only mutable comment field
type UpdateCommentRequest struct {
	Text *string `json:"text,omitempty"`
}
