package inbound

import (
	"context"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/identity/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/ratelimit"
	"github.com/danishfaisall/gokart/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	OTPVerify(ctx context.Context, in usecase.OTPVerifyInput) (*usecase.OTPVerifyOutput, error)
	OTPResend(ctx context.Context, in usecase.OTPResendInput) error

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) error

	PhoneChangeRequest(ctx context.Context, in usecase.PhoneChangeRequestInput) error
	PhoneChangeVerify(ctx context.Context, in usecase.PhoneChangeVerifyInput) error
	EmailChangeRequest(ctx context.Context, in usecase.EmailChangeRequestInput) error
	EmailChangeVerify(ctx context.Context, in usecase.EmailChangeVerifyInput) error

	Profile(ctx context.Context, in usecase.ProfileInput) (*entity.User, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error
	ProfileUpdateAvatar(ctx context.Context, in usecase.ProfileUpdateAvatarInput) error
}

// RegisterHTTPEndpoint wires the identity routes. Login attempts and code
// issuance get their own, tighter rate limits on top of the global one.
func RegisterHTTPEndpoint(r *router.Router, uc uc, loginLimiter, otpLimiter ratelimit.Limiter) {
	end := &HTTPEndpoint{uc: uc}
	limitLogin := router.RateLimit(loginLimiter)
	limitOTP := router.RateLimit(otpLimiter)

	// Auth
	r.POST("/api/v1/auth/register", end.Register, limitOTP)
	r.POST("/api/v1/auth/login", end.Login, limitLogin)
	r.POST("/api/v1/auth/otp/verify", end.OTPVerify)
	r.POST("/api/v1/auth/otp/resend", end.OTPResend, limitOTP)

	// Password Management
	r.POST("/api/v1/auth/password/forgot", end.PasswordForgot, limitOTP)
	r.POST("/api/v1/auth/password/reset", end.PasswordReset)
	r.POST("/api/v1/auth/password/change", end.PasswordChange) // need authenticated

	// User Profile (need authenticated)
	r.GET("/api/v1/profile", end.Profile)
	r.PUT("/api/v1/profile", end.ProfileUpdate)
	r.PUT("/api/v1/profile/avatar", end.ProfileUpdateAvatar)
	r.POST("/api/v1/profile/phone/change", end.PhoneChangeRequest, limitOTP)
	r.POST("/api/v1/profile/phone/verify", end.PhoneChangeVerify)
	r.POST("/api/v1/profile/email/change", end.EmailChangeRequest, limitOTP)
	r.POST("/api/v1/profile/email/verify", end.EmailChangeVerify)
}
