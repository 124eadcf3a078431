package inbound

import (
	"github.com/quotely/formrelay/internal/pkg/router"
	"github.com/quotely/formrelay/internal/submission/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

// Submit accepts a quote request form post and relays it by email.
//
// The body may be JSON, urlencoded, or multipart; decoding picks the
// strategy from the Content-Type header.
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	req, err := decodeSubmitRequest(r)
	if err != nil {
		return nil, err
	}

	if _, err := h.uc.Submit(r.Context(), usecase.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Needs:   req.Needs,
		Company: req.Company,
	}); err != nil {
		return nil, err
	}

	return SubmitResponse{}, nil
}
