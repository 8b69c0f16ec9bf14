package inbound

import (
	"github.com/danishfaisall/gokart/internal/identity/entity"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "Registration successful. Please check your email for the verification code."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type OTPVerifyRequest struct {
	Email   string `json:"email"`
	Code    string `json:"code"`
	Purpose string `json:"purpose"`
}

type OTPVerifyResponse struct {
	AccessToken string        `json:"access_token,omitempty"`
	ResetToken  string        `json:"reset_token,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
}

type OTPResendRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type OTPResendResponse struct{}

func (OTPResendResponse) Message() string {
	return "If an account with that email exists, we have sent a verification code."
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct{}

func (PasswordForgotResponse) Message() string {
	return "If an account with that email exists, we have sent a verification code."
}

type PasswordResetRequest struct {
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PhoneChangeRequest struct {
	Phone string `json:"phone"`
}

type PhoneChangeResponse struct{}

func (PhoneChangeResponse) Message() string {
	return "We have sent a verification code to your email."
}

type EmailChangeRequest struct {
	NewEmail string `json:"new_email"`
}

type EmailChangeResponse struct{}

func (EmailChangeResponse) Message() string {
	return "We have sent a verification code to your new email address."
}

type OTPCodeRequest struct {
	Code string `json:"code"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
}

type UserResponse struct {
	ID         int64  `json:"id,string"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	AvatarURL  string `json:"avatar_url"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Role:       u.Role.String(),
		IsVerified: u.IsVerified,
		AvatarURL:  u.AvatarURL,
	}
}
