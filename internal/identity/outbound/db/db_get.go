package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/danishfaisall/gokart/internal/identity/entity"
)

const userColumns = `id, email, full_name, phone, password, role, is_verified, avatar_url,
	otp_code, otp_purpose, otp_target, otp_expires_at, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u            entity.User
		role         int16
		otpCode      pgtype.Text
		otpPurpose   pgtype.Int2
		otpTarget    pgtype.Text
		otpExpiresAt pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)

	if err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Password, &role, &u.IsVerified, &u.AvatarURL,
		&otpCode, &otpPurpose, &otpTarget, &otpExpiresAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	u.Role = entity.Role(role)
	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	if otpCode.Valid {
		u.OTP = &entity.OTPState{
			Code:      otpCode.String,
			Purpose:   entity.OTPPurpose(otpPurpose.Int16),
			Target:    otpTarget.String,
			ExpiresAt: otpExpiresAt.Time,
		}
	}

	return &u, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	user, err := scanUser(s.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	user, err := scanUser(s.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}
