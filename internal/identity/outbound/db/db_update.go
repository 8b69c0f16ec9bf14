package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/danishfaisall/gokart/internal/identity/entity"
)

// SetOTP overwrites the outstanding code in one statement, so a concurrent
// issuance resolves to last-write-wins on all four columns together.
func (s *DB) SetOTP(ctx context.Context, userID int64, otp entity.OTPState) (err error) {
	ctx, span := s.startSpan(ctx, "SetOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET otp_code = $2, otp_purpose = $3, otp_target = $4, otp_expires_at = $5, updated_at = NOW()
		WHERE id = $1`,
		userID, otp.Code, int16(otp.Purpose), otp.Target,
		pgtype.Timestamptz{Valid: true, Time: otp.ExpiresAt},
	)
	return s.mapError(err)
}

// ConsumeOTP clears the outstanding code without any purpose-specific effect.
func (s *DB) ConsumeOTP(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "ConsumeOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET otp_code = NULL, otp_purpose = NULL, otp_target = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`,
		userID,
	)
	return s.mapError(err)
}

// ConsumeOTPRegister clears the outstanding code and marks the user verified.
func (s *DB) ConsumeOTPRegister(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "ConsumeOTPRegister")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET otp_code = NULL, otp_purpose = NULL, otp_target = NULL, otp_expires_at = NULL,
			is_verified = TRUE, updated_at = NOW()
		WHERE id = $1`,
		userID,
	)
	return s.mapError(err)
}

// ConsumeOTPChangePhone clears the outstanding code and commits the new phone.
func (s *DB) ConsumeOTPChangePhone(ctx context.Context, userID int64, phone string) (err error) {
	ctx, span := s.startSpan(ctx, "ConsumeOTPChangePhone")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET otp_code = NULL, otp_purpose = NULL, otp_target = NULL, otp_expires_at = NULL,
			phone = $2, updated_at = NOW()
		WHERE id = $1`,
		userID, phone,
	)
	return s.mapError(err)
}

// ConsumeOTPChangeEmail clears the outstanding code and commits the new email.
func (s *DB) ConsumeOTPChangeEmail(ctx context.Context, userID int64, email string) (err error) {
	ctx, span := s.startSpan(ctx, "ConsumeOTPChangeEmail")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET otp_code = NULL, otp_purpose = NULL, otp_target = NULL, otp_expires_at = NULL,
			email = $2, updated_at = NOW()
		WHERE id = $1`,
		userID, email,
	)
	return s.mapError(err)
}

func (s *DB) UpdatePassword(ctx context.Context, userID int64, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePassword")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`,
		userID, hash,
	)
	return s.mapError(err)
}

func (s *DB) UpdateProfile(ctx context.Context, id int64, fullName string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProfile")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users SET full_name = $2, updated_at = NOW() WHERE id = $1`,
		id, fullName,
	)
	return s.mapError(err)
}

func (s *DB) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateAvatar")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`,
		id, avatarURL,
	)
	return s.mapError(err)
}
