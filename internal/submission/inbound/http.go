package inbound

import (
	"github.com/quotely/formrelay/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/quote-requests", end.Submit)
}
