package model

import "time"

type Post struct {
	ID      string `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"index;not null" json:"userID"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
