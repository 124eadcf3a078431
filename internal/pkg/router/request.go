package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/quotely/formrelay/internal/pkg/goerror"
)

// maxTextPartBytes caps how much of a single multipart text field is read.
const maxTextPartBytes = 64 * 1024

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetQuery reads a trimmed query parameter.
func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// DecodeBody decodes the JSON body into dst.
//
// Unknown fields and trailing data are rejected; an empty body is a parse
// error, not a panic.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewParse(errors.New("missing request body"))
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewParse(fmt.Errorf("decode json body: %w", err))
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return goerror.NewParse(errors.New("unexpected trailing data in json body"))
	}

	return nil
}

// FormValues decodes an application/x-www-form-urlencoded body.
func (r *Request) FormValues() (url.Values, error) {
	if r == nil || r.Body == nil {
		return nil, goerror.NewParse(errors.New("missing request body"))
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, goerror.NewParse(fmt.Errorf("read form body: %w", err))
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, goerror.NewParse(fmt.Errorf("parse form body: %w", err))
	}

	return values, nil
}

// MultipartTextValues reads every text part of a multipart/form-data body
// keyed by its form field name. Values are trimmed. Parts carrying a filename
// are skipped; this surface has no use for attachments.
func (r *Request) MultipartTextValues(boundary string) (map[string]string, error) {
	if r == nil || r.Body == nil {
		return nil, goerror.NewParse(errors.New("missing request body"))
	}
	if boundary == "" {
		return nil, goerror.NewParse(errors.New("multipart body without boundary"))
	}

	mr := multipart.NewReader(r.Body, boundary)
	values := make(map[string]string)

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerror.NewParse(fmt.Errorf("read multipart part: %w", err))
		}

		if part.FileName() != "" {
			if _, err := io.Copy(io.Discard, part); err != nil {
				part.Close()
				return nil, goerror.NewParse(err)
			}
			part.Close()
			continue
		}

		raw, err := io.ReadAll(io.LimitReader(part, maxTextPartBytes))
		if err != nil {
			part.Close()
			return nil, goerror.NewParse(fmt.Errorf("read multipart value: %w", err))
		}
		part.Close()

		if name := part.FormName(); name != "" {
			values[name] = strings.TrimSpace(string(raw))
		}
	}

	return values, nil
}
