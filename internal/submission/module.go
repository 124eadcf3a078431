package submission

import (
	"github.com/quotely/formrelay/internal/pkg/clock"
	"github.com/quotely/formrelay/internal/pkg/config"
	"github.com/quotely/formrelay/internal/pkg/instrument"
	"github.com/quotely/formrelay/internal/pkg/mail"
	"github.com/quotely/formrelay/internal/pkg/router"
	"github.com/quotely/formrelay/internal/pkg/uid"
	"github.com/quotely/formrelay/internal/pkg/validator"
	"github.com/quotely/formrelay/internal/submission/inbound"
	"github.com/quotely/formrelay/internal/submission/outbound/email"
	"github.com/quotely/formrelay/internal/submission/usecase"
)

type Dependency struct {
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	Clock      clock.Clocker
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewSubmission(usecase.Dependency{
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Validator:  dep.Validator,
		RepoMail:   repoMail,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
