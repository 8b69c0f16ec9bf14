package db

import (
	"context"

	"github.com/danishfaisall/gokart/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO users (id, email, full_name, phone, password, role, is_verified, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)`,
		user.ID, user.Email, user.FullName, user.Phone, user.Password, int16(user.Role), user.AvatarURL,
	)
	return s.mapError(err)
}
