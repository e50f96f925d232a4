package models

import "time"

// Follow is a directed edge meaning "user follows author". The composite
// unique index keeps the pair idempotent under concurrent identical requests;
// the write path additionally suppresses self-follows.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_follows_pair,unique;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AuthorID  uint      `gorm:"index:idx_follows_pair,unique;not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Follow model
func (Follow) TableName() string {
	return "follows"
}
