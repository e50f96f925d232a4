package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Post is a unit of published content. The author and publication timestamp
// are set at creation and never change; only text, group and image may be
// edited afterwards, and only by the author.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Text        string    `gorm:"type:text" json:"text" validate:"required,min=1"`
	PublishedAt time.Time `gorm:"autoCreateTime;index" json:"published_at"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	GroupID     *uint     `gorm:"index" json:"group_id,omitempty"`
	Group       *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty" validate:"-"`
	ImagePath   string    `gorm:"type:varchar(255)" json:"image_path,omitempty"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

func (p *Post) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// Preview returns the first characters of the post text for listings and logs.
func (p *Post) Preview() string {
	runes := []rune(p.Text)
	if len(runes) <= 15 {
		return p.Text
	}
	return string(runes[:15])
}
