package entity

import (
	"time"
)

type User struct {
	ID         int64
	Email      string
	FullName   string
	Phone      string
	Password   string // hashed
	Role       Role
	IsVerified bool
	AvatarURL  string
	OTP        *OTPState
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type NewUser struct {
	ID        int64
	Email     string
	FullName  string
	Phone     string
	Password  string // hashed
	Role      Role
	AvatarURL string
}
