package inbound

import (
	"context"

	"github.com/danishfaisall/gokart/internal/notification/usecase"
)

type uc interface {
	ConsumeOTPIssued(ctx context.Context, in usecase.ConsumeOTPIssuedInput) error
}
