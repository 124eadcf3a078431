package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/quotely/formrelay/internal/pkg/clock"
	"github.com/quotely/formrelay/internal/pkg/config"
	"github.com/quotely/formrelay/internal/pkg/goerror"
	"github.com/quotely/formrelay/internal/pkg/instrument"
	"github.com/quotely/formrelay/internal/pkg/mail"
	"github.com/quotely/formrelay/internal/pkg/validator"
	"github.com/quotely/formrelay/internal/submission/entity"
)

const testConfigYAML = `
mail:
  host: smtp.example.com
  port: 587
  username: relay
  password: secret
  from: no-reply@quotely.co
  to: quotes@quotely.co
`

type fakeMail struct {
	sent []mail.Message
	id   string
	err  error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return f.id, nil
}

type fixedID struct{}

func (fixedID) Generate() int64 { return 42 }

func newTestUsecase(t *testing.T, yaml string, sender *fakeMail) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	if err != nil {
		t.Fatalf("new config: %v", err)
	}

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	ins, err := instrument.New(context.Background(), nil)
	if err != nil {
		t.Fatalf("new instrument: %v", err)
	}

	return NewSubmission(Dependency{
		Config:     cfg,
		UID:        fixedID{},
		Clock:      clock.NewFixed(time.Date(2025, time.November, 3, 14, 5, 0, 0, time.UTC)),
		Validator:  v,
		RepoMail:   sender,
		Instrument: ins,
	})
}

func validInput() SubmitInput {
	return SubmitInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "+15555550123",
		Needs: "home insurance",
	}
}

func TestSubmitSendsFormattedMail(t *testing.T) {
	// Arrange
	sender := &fakeMail{id: "<msg-1@smtp.example.com>"}
	uc := newTestUsecase(t, testConfigYAML, sender)

	// Act
	out, err := uc.Submit(context.Background(), validInput())

	// Assert
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.SubmissionID != 42 {
		t.Errorf("submission id = %d", out.SubmissionID)
	}
	if out.MessageID != "<msg-1@smtp.example.com>" {
		t.Errorf("message id = %q", out.MessageID)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.Subject != "New Form Submission - Insurance Quote Request #031120251405" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "quotes@quotely.co" {
		t.Errorf("to = %v", msg.To)
	}
	if msg.From != "no-reply@quotely.co" {
		t.Errorf("from = %q", msg.From)
	}
	for _, want := range []string{"Jane Doe", "jane@example.com", "+15555550123", "home insurance", "follow up"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q:\n%s", want, msg.TextBody)
		}
	}
	if !strings.Contains(msg.HTMLBody, "Jane Doe") {
		t.Errorf("html body missing name:\n%s", msg.HTMLBody)
	}
}

func TestSubmitSubjectTimestampIsTwelveDigits(t *testing.T) {
	// Arrange
	sender := &fakeMail{id: "<x@y>"}
	uc := newTestUsecase(t, testConfigYAML, sender)

	// Act
	if _, err := uc.Submit(context.Background(), validInput()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Assert
	token := strings.TrimPrefix(sender.sent[0].Subject, subjectPrefix)
	if len(token) != 12 {
		t.Fatalf("timestamp token %q has %d characters, want 12", token, len(token))
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			t.Fatalf("timestamp token %q contains non-digit %q", token, r)
		}
	}
}

func TestBuildMessageIsDeterministic(t *testing.T) {
	// Arrange
	uc := newTestUsecase(t, testConfigYAML, &fakeMail{})
	qr := entity.QuoteRequest{Name: "Jane Doe", Email: "jane@example.com", Phone: "+15555550123"}

	// Act
	first, err := uc.buildMessage(qr)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := uc.buildMessage(qr)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// Assert
	if first.Subject != second.Subject {
		t.Errorf("subjects differ: %q vs %q", first.Subject, second.Subject)
	}
	if first.TextBody != second.TextBody {
		t.Errorf("bodies differ")
	}
}

func TestBuildMessageDefaultsNeeds(t *testing.T) {
	// Arrange
	uc := newTestUsecase(t, testConfigYAML, &fakeMail{})

	// Act
	msg, err := uc.buildMessage(entity.QuoteRequest{Name: "Jane", Email: "j@x.com", Phone: "+15555550123", Needs: "  "})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// Assert
	if !strings.Contains(msg.TextBody, "Not specified") {
		t.Errorf("text body should default needs:\n%s", msg.TextBody)
	}
}

func TestRecipientFallsBackToDefault(t *testing.T) {
	// Arrange: config without mail.to
	yaml := strings.Replace(testConfigYAML, "  to: quotes@quotely.co\n", "", 1)
	uc := newTestUsecase(t, yaml, &fakeMail{})

	// Assert
	if got := uc.recipient(); got != defaultRecipient {
		t.Errorf("recipient = %q, want %q", got, defaultRecipient)
	}
}

func TestSubmitValidationFailureDoesNotSend(t *testing.T) {
	// Arrange
	sender := &fakeMail{}
	uc := newTestUsecase(t, testConfigYAML, sender)

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{Name: "J", Email: "bad", Phone: "x"})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T", err)
	}
	if gerr.StatusCode() != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", gerr.StatusCode())
	}

	var verr validator.V10ValidationError
	if !errors.As(err, &verr) || len(verr) != 3 {
		t.Errorf("expected 3 field errors, got %v", err)
	}
	if len(sender.sent) != 0 {
		t.Error("no mail should be sent on validation failure")
	}
}

func TestSubmitHoneypotDropsSilently(t *testing.T) {
	// Arrange
	sender := &fakeMail{}
	uc := newTestUsecase(t, testConfigYAML, sender)

	in := validInput()
	in.Company = "Acme Corp"

	// Act
	out, err := uc.Submit(context.Background(), in)

	// Assert
	if err != nil {
		t.Fatalf("honeypot submissions must look successful, got %v", err)
	}
	if out == nil || out.MessageID != "" {
		t.Errorf("output = %+v", out)
	}
	if len(sender.sent) != 0 {
		t.Error("honeypot submission must not send mail")
	}
}

func TestSubmitMissingCredentials(t *testing.T) {
	tests := []string{"username", "password", "from"}

	for _, field := range tests {
		t.Run(field, func(t *testing.T) {
			// Arrange
			yaml := strings.Replace(testConfigYAML, "  "+field+":", "  "+field+"_unset:", 1)
			sender := &fakeMail{}
			uc := newTestUsecase(t, yaml, sender)

			// Act
			_, err := uc.Submit(context.Background(), validInput())

			// Assert
			var gerr *goerror.Error
			if !errors.As(err, &gerr) {
				t.Fatalf("expected *goerror.Error, got %T", err)
			}
			if gerr.StatusCode() != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", gerr.StatusCode())
			}
			if gerr.Code() != goerror.CodeConfig {
				t.Errorf("code = %v, want CodeConfig", gerr.Code())
			}
			if len(sender.sent) != 0 {
				t.Error("no mail should be attempted without credentials")
			}
		})
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	// Arrange
	sender := &fakeMail{err: errors.New("smtp timeout")}
	uc := newTestUsecase(t, testConfigYAML, sender)

	// Act
	_, err := uc.Submit(context.Background(), validInput())

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T", err)
	}
	if gerr.StatusCode() != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", gerr.StatusCode())
	}
	if gerr.Code() != goerror.CodeSend {
		t.Errorf("code = %v, want CodeSend", gerr.Code())
	}
}
