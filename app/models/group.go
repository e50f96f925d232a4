package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Group is a named category posts can be filed under. Groups are managed
// administratively; deleting one clears the reference on its posts instead of
// deleting them.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200)" json:"title" validate:"required,min=1,max=200"`
	Slug        string    `gorm:"uniqueIndex;type:varchar(200)" json:"slug" validate:"required,min=1,max=200"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Group model
func (Group) TableName() string {
	return "groups"
}

func (g *Group) Validate() error {
	v := validator.New()

	return v.Struct(g)
}
