package usecase

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/quotely/formrelay/internal/pkg/mail"
	"github.com/quotely/formrelay/internal/submission/entity"
)

const (
	subjectPrefix     = "New Form Submission - Insurance Quote Request #"
	subjectTimeLayout = "020120061504"

	defaultNeeds     = "Not specified"
	defaultRecipient = "quotes@quotely.co"
)

const textBody = `You have received a new insurance quote request.

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Insurance Needs: {{.Needs}}

Please follow up with this request as soon as possible.
`

const htmlBody = `<h2>New Insurance Quote Request</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Insurance Needs:</strong> {{.Needs}}</p>
<p>Please follow up with this request as soon as possible.</p>
`

// buildMessage renders the outbound mail for a quote request. The output
// depends only on the submission and the clock, so the same submission at
// the same instant always formats identically.
func (s *Usecase) buildMessage(qr entity.QuoteRequest) (mail.Message, error) {
	needs := strings.TrimSpace(qr.Needs)
	if needs == "" {
		needs = defaultNeeds
	}

	data := map[string]any{
		"Name":  qr.Name,
		"Email": qr.Email,
		"Phone": qr.Phone,
		"Needs": needs,
	}

	text, err := s.renderText("text", textBody, data)
	if err != nil {
		return mail.Message{}, err
	}

	html, err := s.renderHTML("html", htmlBody, data)
	if err != nil {
		return mail.Message{}, err
	}

	return mail.Message{
		From:     s.cfg.GetString("mail.from"),
		To:       []string{s.recipient()},
		Subject:  subjectPrefix + s.clock.Now().Format(subjectTimeLayout),
		TextBody: text,
		HTMLBody: html,
	}, nil
}

// renderText keeps submitted values verbatim in the plain-text body.
func (s *Usecase) renderText(name, tpl string, data map[string]any) (string, error) {
	t, err := texttemplate.New(name).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// renderHTML escapes submitted values for the HTML body.
func (s *Usecase) renderHTML(name, tpl string, data map[string]any) (string, error) {
	t, err := htmltemplate.New(name).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Usecase) recipient() string {
	if to := strings.TrimSpace(s.cfg.GetString("mail.to")); to != "" {
		return to
	}
	return defaultRecipient
}
