package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewSMTPRequiresHostAndPort(t *testing.T) {
	tests := []struct {
		name string
		cfg  SMTPConfig
	}{
		{"missing host", SMTPConfig{Port: 587}},
		{"missing port", SMTPConfig{Host: "smtp.example.com"}},
		{"missing both", SMTPConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSMTP(tt.cfg)
			if !errors.Is(err, ErrSMTPHostPortRequired) {
				t.Errorf("expected ErrSMTPHostPortRequired, got %v", err)
			}
		})
	}
}

func TestSMTPSendGuards(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
	if err != nil {
		t.Fatalf("new smtp: %v", err)
	}

	t.Run("no recipients", func(t *testing.T) {
		_, err := s.Send(context.Background(), Message{From: "a@b.c", Subject: "x"})
		if !errors.Is(err, ErrSMTPNoRecipients) {
			t.Errorf("expected ErrSMTPNoRecipients, got %v", err)
		}
	})

	t.Run("no sender", func(t *testing.T) {
		_, err := s.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "x"})
		if !errors.Is(err, ErrSMTPNoSender) {
			t.Errorf("expected ErrSMTPNoSender, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Send(ctx, Message{From: "a@b.c", To: []string{"d@e.f"}, Subject: "x"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestBuildBody(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		body, contentType := buildBody(Message{TextBody: "hello"})
		if body != "hello" {
			t.Errorf("body = %q", body)
		}
		if contentType != "text/plain; charset=UTF-8" {
			t.Errorf("content type = %q", contentType)
		}
	})

	t.Run("html only", func(t *testing.T) {
		body, contentType := buildBody(Message{HTMLBody: "<p>hello</p>"})
		if body != "<p>hello</p>" {
			t.Errorf("body = %q", body)
		}
		if contentType != "text/html; charset=UTF-8" {
			t.Errorf("content type = %q", contentType)
		}
	})

	t.Run("both builds multipart alternative", func(t *testing.T) {
		body, contentType := buildBody(Message{TextBody: "hello", HTMLBody: "<p>hello</p>"})
		if !strings.HasPrefix(contentType, "multipart/alternative; boundary=formrelay-boundary-") {
			t.Errorf("content type = %q", contentType)
		}
		if !strings.Contains(body, "hello") || !strings.Contains(body, "<p>hello</p>") {
			t.Errorf("body missing parts: %q", body)
		}
	})
}

func TestMessageIDFormat(t *testing.T) {
	// Act
	first := messageID("smtp.example.com")
	second := messageID("smtp.example.com")

	// Assert
	if !strings.HasPrefix(first, "<") || !strings.HasSuffix(first, "@smtp.example.com>") {
		t.Errorf("message id = %q", first)
	}
	if first == second {
		t.Error("message ids should be unique")
	}
}
