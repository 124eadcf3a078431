package inbound

import (
	"context"

	"github.com/quotely/formrelay/internal/submission/usecase"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitOutput, error)
}
