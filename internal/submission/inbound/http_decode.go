package inbound

import (
	"mime"
	"strings"

	"github.com/quotely/formrelay/internal/pkg/router"
)

// decodeSubmitRequest reads a SubmitRequest from the body using the
// Content-Type header. JSON is decoded strictly; multipart requires a
// boundary; everything else is treated as urlencoded form data, which
// matches what plain HTML forms send.
func decodeSubmitRequest(r *router.Request) (SubmitRequest, error) {
	var req SubmitRequest

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/json":
		if err := r.DecodeBody(&req); err != nil {
			return req, err
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Phone = strings.TrimSpace(req.Phone)
		req.Needs = strings.TrimSpace(req.Needs)
		req.Company = strings.TrimSpace(req.Company)

	case "multipart/form-data":
		values, err := r.MultipartTextValues(params["boundary"])
		if err != nil {
			return req, err
		}
		req.Name = values["name"]
		req.Email = values["email"]
		req.Phone = values["phone"]
		req.Needs = values["needs"]
		req.Company = values["company"]

	default:
		values, err := r.FormValues()
		if err != nil {
			return req, err
		}
		req.Name = strings.TrimSpace(values.Get("name"))
		req.Email = strings.TrimSpace(values.Get("email"))
		req.Phone = strings.TrimSpace(values.Get("phone"))
		req.Needs = strings.TrimSpace(values.Get("needs"))
		req.Company = strings.TrimSpace(values.Get("company"))
	}

	return req, nil
}
