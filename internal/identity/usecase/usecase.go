package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/hash"
	"github.com/danishfaisall/gokart/internal/pkg/idempotency"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
	"github.com/danishfaisall/gokart/internal/pkg/otpcode"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/uid"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

type OTPIssuedEvent struct {
	UserID    int64
	Recipient string
	FullName  string
	Code      string
	Purpose   entity.OTPPurpose
	ExpiresIn time.Duration
}

type repoMessaging interface {
	PublishOTPIssued(ctx context.Context, msg OTPIssuedEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)

	CreateUser(ctx context.Context, user entity.NewUser) error

	SetOTP(ctx context.Context, userID int64, otp entity.OTPState) error
	ConsumeOTPRegister(ctx context.Context, userID int64) error
	ConsumeOTP(ctx context.Context, userID int64) error
	ConsumeOTPChangePhone(ctx context.Context, userID int64, phone string) error
	ConsumeOTPChangeEmail(ctx context.Context, userID int64, email string) error

	UpdatePassword(ctx context.Context, userID int64, hash string) error
	UpdateProfile(ctx context.Context, id int64, fullName string) error
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	storage       storage.Storage
	bcrypt        hash.Hasher
	otp           otpcode.Generator
	uid           uid.NumberID
	uuid          uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Storage       storage.Storage
	Bcrypt        hash.Hasher
	OTP           otpcode.Generator
	UID           uid.NumberID
	UUID          uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		storage:       dep.Storage,
		bcrypt:        dep.Bcrypt,
		otp:           dep.OTP,
		uid:           dep.UID,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}

// issueOTP overwrites the user's outstanding code in a single write and hands
// the code to the notification publisher. Publish failures are logged only;
// the stored code stays valid even when delivery fails.
func (s *Usecase) issueOTP(ctx context.Context, user *entity.User, purpose entity.OTPPurpose, recipient, target string) error {
	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	if err := s.repoDB.SetOTP(ctx, user.ID, entity.OTPState{
		Code:      code,
		Purpose:   purpose,
		Target:    target,
		ExpiresAt: s.clock.Now().Add(ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo set verification code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		UserID:    user.ID,
		Recipient: recipient,
		FullName:  user.FullName,
		Code:      code,
		Purpose:   purpose,
		ExpiresIn: ttl,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish verification code", "user_id", user.ID, "purpose", purpose.String(), "error", err)
	}

	return nil
}

// mapOTPError translates verification failures into caller-facing errors.
func (s *Usecase) mapOTPError(ctx context.Context, userID int64, err error) error {
	switch {
	case errors.Is(err, entity.ErrNoPendingCode):
		slog.WarnContext(ctx, "no pending verification code", "user_id", userID)
		return goerror.NewBusiness("No verification code is pending", goerror.CodeInvalidInput)

	case errors.Is(err, entity.ErrCodeMismatch):
		slog.WarnContext(ctx, "verification code mismatch", "user_id", userID)
		return goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidInput)

	case errors.Is(err, entity.ErrPurposeMismatch):
		slog.WarnContext(ctx, "verification code purpose mismatch", "user_id", userID)
		return goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidInput)

	case errors.Is(err, entity.ErrCodeExpired):
		slog.WarnContext(ctx, "verification code expired", "user_id", userID)
		return goerror.NewBusiness("Verification code has expired", goerror.CodeInvalidInput)

	default:
		return goerror.NewServer(err)
	}
}
