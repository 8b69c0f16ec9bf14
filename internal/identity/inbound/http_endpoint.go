package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danishfaisall/gokart/internal/identity/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication and profile workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates an unverified account and emails a verification code.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	}); err != nil {
		return nil, err
	}

	return &RegisterResponse{}, nil
}

// Login authenticates a user and returns an access token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		User:        toUserResponse(resp.User),
	}, nil
}

// OTPVerify consumes a verification code for the REGISTER and RESET_PASSWORD
// flows.
func (h *HTTPEndpoint) OTPVerify(r *router.Request) (any, error) {
	var req OTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPVerify(r.Context(), usecase.OTPVerifyInput{
		Email:   req.Email,
		Code:    req.Code,
		Purpose: req.Purpose,
	})
	if err != nil {
		return nil, err
	}

	out := OTPVerifyResponse{
		AccessToken: resp.AccessToken,
		ResetToken:  resp.ResetToken,
	}
	if resp.User != nil {
		u := toUserResponse(resp.User)
		out.User = &u
	}

	return out, nil
}

// OTPResend issues a fresh verification code for an unauthenticated flow.
func (h *HTTPEndpoint) OTPResend(r *router.Request) (any, error) {
	var req OTPResendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OTPResend(r.Context(), usecase.OTPResendInput{
		Email:   req.Email,
		Purpose: req.Purpose,
	}); err != nil {
		return nil, err
	}

	return &OTPResendResponse{}, nil
}

// PasswordForgot starts the password reset flow by emailing a code.
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return &PasswordForgotResponse{}, nil
}

// PasswordReset sets a new password using a reset token.
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		ResetToken:  req.ResetToken,
		NewPassword: req.NewPassword,
	})
}

// PasswordChange updates the current user's password.
func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
}

// PhoneChangeRequest issues a verification code for a phone number change.
func (h *HTTPEndpoint) PhoneChangeRequest(r *router.Request) (any, error) {
	var req PhoneChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PhoneChangeRequest(r.Context(), usecase.PhoneChangeRequestInput{Phone: req.Phone}); err != nil {
		return nil, err
	}

	return &PhoneChangeResponse{}, nil
}

// PhoneChangeVerify commits the pending phone number change.
func (h *HTTPEndpoint) PhoneChangeVerify(r *router.Request) (any, error) {
	var req OTPCodeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.PhoneChangeVerify(r.Context(), usecase.PhoneChangeVerifyInput{Code: req.Code})
}

// EmailChangeRequest issues a verification code for an email change. The code
// is sent to the new address.
func (h *HTTPEndpoint) EmailChangeRequest(r *router.Request) (any, error) {
	var req EmailChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.EmailChangeRequest(r.Context(), usecase.EmailChangeRequestInput{NewEmail: req.NewEmail}); err != nil {
		return nil, err
	}

	return &EmailChangeResponse{}, nil
}

// EmailChangeVerify commits the pending email change.
func (h *HTTPEndpoint) EmailChangeVerify(r *router.Request) (any, error) {
	var req OTPCodeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.EmailChangeVerify(r.Context(), usecase.EmailChangeVerifyInput{Code: req.Code})
}

// Profile retrieves the current user's profile details.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{})
	if err != nil {
		return nil, err
	}

	return toUserResponse(resp), nil
}

// ProfileUpdate updates the current user's profile information.
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req UpdateProfileRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{FullName: req.FullName})
}

// ProfileUpdateAvatar replaces the current user's avatar image.
func (h *HTTPEndpoint) ProfileUpdateAvatar(r *router.Request) (any, error) {
	ctx := r.Context()

	file, err := r.StreamSingleFile("avatar")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	return nil, h.uc.ProfileUpdateAvatar(ctx, usecase.ProfileUpdateAvatarInput{
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
}
