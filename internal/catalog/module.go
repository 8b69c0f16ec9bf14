package catalog

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danishfaisall/gokart/internal/catalog/inbound"
	"github.com/danishfaisall/gokart/internal/catalog/outbound/db"
	"github.com/danishfaisall/gokart/internal/catalog/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/router"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/uid"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Enforcer   *casbin.Enforcer           `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbCatalog := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbCatalog,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Storage:    dep.Storage,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Enforcer)

	return nil
}
