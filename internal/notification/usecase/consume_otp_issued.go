package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/danishfaisall/gokart/internal/pkg/mail"
)

type ConsumeOTPIssuedInput struct {
	UserID    int64  `validate:"required,gt=0"`
	Recipient string `validate:"required,email"`
	FullName  string `validate:"required"`
	Code      string `validate:"required,len=6,number"`
	Purpose   string `validate:"required"`
	ExpiresIn int64  `validate:"required,gt=0"`
}

type otpEmailCopy struct {
	Subject string
	Intro   string
}

var otpEmailCopies = map[string]otpEmailCopy{
	"REGISTER": {
		Subject: "Verify your email address",
		Intro:   "Welcome! Use the code below to verify your email address and activate your account.",
	},
	"RESET_PASSWORD": {
		Subject: "Reset your password",
		Intro:   "We received a request to reset your password. Use the code below to continue.",
	},
	"CHANGE_PHONE": {
		Subject: "Confirm your phone number change",
		Intro:   "Use the code below to confirm the phone number change on your account.",
	},
	"CHANGE_EMAIL": {
		Subject: "Confirm your new email address",
		Intro:   "Use the code below to confirm this email address as the new address for your account.",
	},
}

const otpEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333333; margin: 0; padding: 24px;">
	<div style="max-width: 480px; margin: 0 auto;">
		<h2 style="margin-bottom: 8px;">{{.subject}}</h2>
		<p>Hi {{.full_name}},</p>
		<p>{{.intro}}</p>
		<p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center; margin: 24px 0;">{{.code}}</p>
		<p>This code expires in {{.expires_minutes}} minutes and can only be used once.</p>
		<p>If you did not request this, you can safely ignore this email.</p>
		<hr style="border: none; border-top: 1px solid #eeeeee; margin: 24px 0;">
		<p style="font-size: 12px; color: #999999;">
			Need help? Contact {{.support_email}}.<br>
			&copy; {{.year}} {{.company_name}}
		</p>
	</div>
</body>
</html>`

// ConsumeOTPIssued delivers a one-time verification code by email. Malformed
// payloads are dropped, delivery failures are returned so the broker retries.
func (s *Usecase) ConsumeOTPIssued(ctx context.Context, in ConsumeOTPIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPIssued")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	c, ok := otpEmailCopies[in.Purpose]
	if !ok {
		slog.ErrorContext(ctx, "unknown verification code purpose", "user_id", in.UserID, "purpose", in.Purpose)
		return nil
	}

	data := s.baseEmailTemplateData()
	data["subject"] = c.Subject
	data["intro"] = c.Intro
	data["full_name"] = in.FullName
	data["code"] = in.Code
	data["expires_minutes"] = int64(time.Duration(in.ExpiresIn) * time.Second / time.Minute)

	body, err := s.renderTemplate("otp_email", otpEmailTemplate, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render verification code email", "user_id", in.UserID, "purpose", in.Purpose, "error", err)
		return nil
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Recipient},
		Subject:  c.Subject,
		HTMLBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code email", "user_id", in.UserID, "purpose", in.Purpose, "error", err)
		return err
	}

	return nil
}
