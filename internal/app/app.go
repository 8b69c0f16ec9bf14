package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/goroutine"
	"github.com/danishfaisall/gokart/internal/pkg/hash"
	"github.com/danishfaisall/gokart/internal/pkg/idempotency"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
	"github.com/danishfaisall/gokart/internal/pkg/mail"
	"github.com/danishfaisall/gokart/internal/pkg/messaging"
	"github.com/danishfaisall/gokart/internal/pkg/otpcode"
	"github.com/danishfaisall/gokart/internal/pkg/pgxcasbin"
	"github.com/danishfaisall/gokart/internal/pkg/ratelimit"
	"github.com/danishfaisall/gokart/internal/pkg/router"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/uid"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hasher
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otpcode.Generator
	jwt       jwt.JWT

	// resources
	dbConn        *pgxpool.Pool
	cacheConn     *redis.Client
	idemp         idempotency.Idempotency
	mail          mail.Mail
	messaging     messaging.Messaging
	storage       storage.Storage
	casbin        *casbin.Enforcer
	casbinWatcher *pgxcasbin.Watcher

	// rate limiting
	globalLimiter ratelimit.Limiter
	loginLimiter  ratelimit.Limiter
	otpLimiter    ratelimit.Limiter

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
