package validator

import (
	"errors"
	"testing"
)

type quoteForm struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,phone"`
}

func TestV10ValidatorValidForm(t *testing.T) {
	// Arrange
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	// Act
	err = v.Validate(quoteForm{Name: "Jo", Email: "jo@x.com", Phone: "+15555550123"})

	// Assert
	if err != nil {
		t.Fatalf("expected no validation errors, got %v", err)
	}
}

func TestV10ValidatorAggregatesInFieldOrder(t *testing.T) {
	// Arrange
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	// Act
	err = v.Validate(quoteForm{})

	// Assert
	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected V10ValidationError, got %T", err)
	}
	if len(verr) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verr), verr)
	}

	wantFields := []string{"name", "email", "phone"}
	for i, fe := range verr {
		if fe.Field != wantFields[i] {
			t.Errorf("error %d: field = %q, want %q", i, fe.Field, wantFields[i])
		}
	}

	wantMessages := []string{
		"Name is a required field",
		"Email is a required field",
		"Phone is a required field",
	}
	for i, msg := range verr.Messages() {
		if msg != wantMessages[i] {
			t.Errorf("message %d = %q, want %q", i, msg, wantMessages[i])
		}
	}
}

func TestV10ValidatorNameMinLength(t *testing.T) {
	// Arrange
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	// Act
	err = v.Validate(quoteForm{Name: "J", Email: "jo@x.com", Phone: "+15555550123"})

	// Assert
	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected V10ValidationError, got %T", err)
	}
	if len(verr) != 1 {
		t.Fatalf("expected 1 field error, got %d: %v", len(verr), verr)
	}
	if verr[0].Message != "Name must be at least 2 characters in length" {
		t.Errorf("message = %q", verr[0].Message)
	}
}

func TestV10ValidatorEmailRule(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	hasEmailError := func(err error) bool {
		var verr V10ValidationError
		if !errors.As(err, &verr) {
			return false
		}
		for _, fe := range verr {
			if fe.Field == "email" {
				return true
			}
		}
		return false
	}

	t.Run("malformed addresses fail", func(t *testing.T) {
		for _, email := range []string{"plainaddress", "@no-local.com", "user@", "user @space.com"} {
			err := v.Validate(quoteForm{Name: "Jo", Email: email, Phone: "+15555550123"})
			if !hasEmailError(err) {
				t.Errorf("email %q: expected email error, got %v", email, err)
			}
		}
	})

	t.Run("valid addresses pass", func(t *testing.T) {
		for _, email := range []string{"jo@x.com", "first.last@example.co.uk", "user+tag@mail.example.org"} {
			err := v.Validate(quoteForm{Name: "Jo", Email: email, Phone: "+15555550123"})
			if hasEmailError(err) {
				t.Errorf("email %q: unexpected email error: %v", email, err)
			}
		}
	})
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+15555550123", true},
		{"555-555-0123", true},
		{"(02) 1234 5678", true},
		{"5550123", true},
		{"555.555.0123", true},
		{"123456", false},             // too few digits
		{"1234567890123456", false},   // too many digits
		{"not-a-number", false},
		{"+", false},
		{"555_555_0123", false},       // unsupported separator
		{"", false},
	}

	for _, tt := range tests {
		if got := validPhone(tt.phone); got != tt.want {
			t.Errorf("validPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestV10ValidatorPhoneTranslation(t *testing.T) {
	// Arrange
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	// Act
	err = v.Validate(quoteForm{Name: "Jo", Email: "jo@x.com", Phone: "abc"})

	// Assert
	var verr V10ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected V10ValidationError, got %T", err)
	}
	if len(verr) != 1 {
		t.Fatalf("expected 1 field error, got %d: %v", len(verr), verr)
	}
	if verr[0].Message != "Phone must be a valid phone number" {
		t.Errorf("message = %q", verr[0].Message)
	}
}
