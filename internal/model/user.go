package model

import "time"

// User is the identity record. ResetToken and ResetExpiresAt are either
// both set (a password reset is pending) or both nil.
type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Verified     bool   `gorm:"default:false"`

	ResetToken     *string    `gorm:"uniqueIndex" json:"-"`
	ResetExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []Post `gorm:"foreignKey:UserID" json:"-"`
}
