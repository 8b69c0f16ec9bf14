package app

import (
	"log/slog"
	"os"

	"github.com/danishfaisall/gokart/internal/catalog"
	"github.com/danishfaisall/gokart/internal/identity"
	"github.com/danishfaisall/gokart/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:       a.dbConn,
			Router:       a.router,
			Idempotency:  a.idemp,
			Messaging:    a.messaging,
			Storage:      a.storage,
			Config:       a.config,
			Instrument:   a.ins,
			UID:          a.uid,
			UUID:         a.uuid,
			OTP:          a.otp,
			Bcrypt:       a.bcrypt,
			Clock:        a.clock,
			Validator:    a.validator,
			JWT:          a.jwt,
			LoginLimiter: a.loginLimiter,
			OTPLimiter:   a.otpLimiter,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Enforcer:   a.casbin,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
