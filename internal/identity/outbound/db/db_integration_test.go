package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
)

// startPostgres boots a throwaway postgres container and applies the schema.
// Tests that use it are skipped unless GOKART_INTEGRATION is set, so the
// default test run does not require docker.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("GOKART_INTEGRATION") == "" {
		t.Skip("set GOKART_INTEGRATION=1 to run container-backed tests")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("gokart"),
		postgres.WithUsername("gokart"),
		postgres.WithPassword("gokart"),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(nat.Port("5432/tcp")),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect to postgres: %v", err)
	}
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../../db/schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return pool
}

func TestDBUserLifecycle(t *testing.T) {
	pool := startPostgres(t)
	repo := NewDB(pool, instrument.NewNoop())
	ctx := context.Background()

	newUser := entity.NewUser{
		ID:       1001,
		Email:    "jane@example.com",
		FullName: "Jane Smith",
		Phone:    "628111222333",
		Password: "bcrypt-hash",
		Role:     entity.RoleUser,
	}

	t.Run("create and get", func(t *testing.T) {
		if err := repo.CreateUser(ctx, newUser); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}

		user, err := repo.GetUserByEmail(ctx, "jane@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if user.ID != 1001 || user.IsVerified || user.OTP != nil {
			t.Fatalf("user = %+v, want unverified with no pending code", user)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		dup := newUser
		dup.ID = 1002

		if err := repo.CreateUser(ctx, dup); !errors.Is(err, goerror.ErrConflict) {
			t.Fatalf("CreateUser() error = %v, want conflict", err)
		}
	})

	t.Run("unknown email not found", func(t *testing.T) {
		if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("GetUserByEmail() error = %v, want not found", err)
		}
	})

	t.Run("otp columns round trip", func(t *testing.T) {
		expires := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Microsecond)
		otp := entity.OTPState{
			Code:      "123456",
			Purpose:   entity.OTPPurposeRegister,
			Target:    "jane@example.com",
			ExpiresAt: expires,
		}

		if err := repo.SetOTP(ctx, 1001, otp); err != nil {
			t.Fatalf("SetOTP() error = %v", err)
		}

		user, err := repo.GetUserByID(ctx, 1001)
		if err != nil {
			t.Fatalf("GetUserByID() error = %v", err)
		}
		if user.OTP == nil {
			t.Fatal("user has no pending code after SetOTP")
		}
		if user.OTP.Code != "123456" || user.OTP.Purpose != entity.OTPPurposeRegister {
			t.Fatalf("stored otp = %+v", user.OTP)
		}
		if !user.OTP.ExpiresAt.Equal(expires) {
			t.Fatalf("stored expiry = %v, want %v", user.OTP.ExpiresAt, expires)
		}
	})

	t.Run("register consumption clears code and verifies", func(t *testing.T) {
		if err := repo.ConsumeOTPRegister(ctx, 1001); err != nil {
			t.Fatalf("ConsumeOTPRegister() error = %v", err)
		}

		user, err := repo.GetUserByID(ctx, 1001)
		if err != nil {
			t.Fatalf("GetUserByID() error = %v", err)
		}
		if user.OTP != nil {
			t.Fatalf("otp state = %+v, want cleared", user.OTP)
		}
		if !user.IsVerified {
			t.Fatal("user not verified after register consumption")
		}
	})

	t.Run("phone change consumption commits the target", func(t *testing.T) {
		otp := entity.OTPState{
			Code:      "654321",
			Purpose:   entity.OTPPurposeChangePhone,
			Target:    "628999888777",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}
		if err := repo.SetOTP(ctx, 1001, otp); err != nil {
			t.Fatalf("SetOTP() error = %v", err)
		}

		if err := repo.ConsumeOTPChangePhone(ctx, 1001, otp.Target); err != nil {
			t.Fatalf("ConsumeOTPChangePhone() error = %v", err)
		}

		user, err := repo.GetUserByID(ctx, 1001)
		if err != nil {
			t.Fatalf("GetUserByID() error = %v", err)
		}
		if user.Phone != "628999888777" {
			t.Fatalf("phone = %q, want committed target", user.Phone)
		}
		if user.OTP != nil {
			t.Fatalf("otp state = %+v, want cleared", user.OTP)
		}
	})

	t.Run("email change consumption onto taken email conflicts", func(t *testing.T) {
		other := newUser
		other.ID = 1003
		other.Email = "taken@example.com"
		if err := repo.CreateUser(ctx, other); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}

		if err := repo.ConsumeOTPChangeEmail(ctx, 1001, "taken@example.com"); !errors.Is(err, goerror.ErrConflict) {
			t.Fatalf("ConsumeOTPChangeEmail() error = %v, want conflict", err)
		}
	})

	t.Run("password update sticks", func(t *testing.T) {
		if err := repo.UpdatePassword(ctx, 1001, "new-bcrypt-hash"); err != nil {
			t.Fatalf("UpdatePassword() error = %v", err)
		}

		user, err := repo.GetUserByID(ctx, 1001)
		if err != nil {
			t.Fatalf("GetUserByID() error = %v", err)
		}
		if user.Password != "new-bcrypt-hash" {
			t.Fatalf("password = %q", user.Password)
		}
	})
}
