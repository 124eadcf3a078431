package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quotely/formrelay/internal/pkg/goerror"
	"github.com/quotely/formrelay/internal/submission/entity"
)

type SubmitInput struct {
	Name    string `validate:"required,min=2"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required,phone"`
	Needs   string
	Company string
}

type SubmitOutput struct {
	SubmissionID int64
	MessageID    string
}

// Submit validates a quote request and relays it to the sales inbox.
//
// A filled honeypot field short-circuits with a success result so bots
// cannot distinguish dropped submissions from delivered ones.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewValidation(err)
	}

	qr := entity.QuoteRequest{
		ID:    s.uid.Generate(),
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Needs: in.Needs,
	}

	if in.Company != "" {
		slog.WarnContext(ctx, "honeypot field filled, dropping submission", "submission_id", qr.ID)
		return &SubmitOutput{SubmissionID: qr.ID}, nil
	}

	if err := s.checkMailConfig(); err != nil {
		return nil, err
	}

	msg, err := s.buildMessage(qr)
	if err != nil {
		return nil, goerror.NewServer(err)
	}

	messageID, err := s.repoMail.Send(ctx, msg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send quote request email", "submission_id", qr.ID, "error", err)
		return nil, goerror.NewSend(err)
	}

	slog.InfoContext(ctx, "quote request relayed", "submission_id", qr.ID, "message_id", messageID)

	return &SubmitOutput{SubmissionID: qr.ID, MessageID: messageID}, nil
}

// checkMailConfig verifies relay credentials are present before any
// network call is attempted.
func (s *Usecase) checkMailConfig() error {
	for _, key := range []string{"mail.username", "mail.password", "mail.from"} {
		if strings.TrimSpace(s.cfg.GetString(key)) == "" {
			return goerror.NewConfig(fmt.Errorf("mail configuration %q is empty", key))
		}
	}

	return nil
}
