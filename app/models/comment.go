package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Comment is feedback attached to a post. Comments cannot outlive their post:
// deleting the post removes them as well.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text" json:"text" validate:"required,min=1"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty" validate:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
