package models

import "time"

// User is an account owned by the identity provider. The service reads ID and IsSuperuser.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:320;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Actor returns the identity used for permission checks.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, IsSuperuser: u.IsSuperuser}
}
