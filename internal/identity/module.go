package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danishfaisall/gokart/internal/identity/inbound"
	"github.com/danishfaisall/gokart/internal/identity/outbound/db"
	"github.com/danishfaisall/gokart/internal/identity/outbound/mq"
	"github.com/danishfaisall/gokart/internal/identity/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/hash"
	"github.com/danishfaisall/gokart/internal/pkg/idempotency"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
	"github.com/danishfaisall/gokart/internal/pkg/messaging"
	"github.com/danishfaisall/gokart/internal/pkg/otpcode"
	"github.com/danishfaisall/gokart/internal/pkg/ratelimit"
	"github.com/danishfaisall/gokart/internal/pkg/router"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/uid"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

type Dependency struct {
	DBConn       *pgxpool.Pool              `validate:"required"`
	Router       *router.Router             `validate:"required"`
	Idempotency  idempotency.Idempotency    `validate:"required"`
	Messaging    messaging.Messaging        `validate:"required"`
	Storage      storage.Storage            `validate:"required"`
	Config       config.Config              `validate:"required"`
	Instrument   instrument.Instrumentation `validate:"required"`
	UID          uid.NumberID               `validate:"required"`
	UUID         uid.StringID               `validate:"required"`
	OTP          otpcode.Generator          `validate:"required"`
	Bcrypt       hash.Hasher                `validate:"required"`
	Clock        clock.Clocker              `validate:"required"`
	Validator    validator.Validator        `validate:"required"`
	JWT          jwt.JWT                    `validate:"required"`
	LoginLimiter ratelimit.Limiter          `validate:"required"`
	OTPLimiter   ratelimit.Limiter          `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbIdentity := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbIdentity,
		RepoMessaging: repoMsg,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Storage:       dep.Storage,
		Bcrypt:        dep.Bcrypt,
		OTP:           dep.OTP,
		UID:           dep.UID,
		UUID:          dep.UUID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.LoginLimiter, dep.OTPLimiter)

	return nil
}
