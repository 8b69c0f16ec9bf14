package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/uid"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

type repoDB interface {
	GetProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error)
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)
	GetTopSellingProducts(ctx context.Context, limit int32) ([]entity.Product, error)
	GetDiscountedProducts(ctx context.Context, limit int32) ([]entity.Product, error)

	CreateProduct(ctx context.Context, in entity.Product) error
	UpdateProduct(ctx context.Context, in entity.Product) error
	UpdateProductImage(ctx context.Context, id int64, imageURL string) error
	DeleteProduct(ctx context.Context, id int64) error

	GetCategories(ctx context.Context, includeInactive bool) ([]entity.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, in entity.Category) error
	UpdateCategory(ctx context.Context, in entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	storage   storage.Storage
	uid       uid.NumberID
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Storage    storage.Storage
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		storage:   dep.Storage,
		uid:       dep.UID,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}
