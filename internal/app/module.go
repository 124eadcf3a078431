package app

import (
	"log/slog"
	"os"

	"github.com/quotely/formrelay/internal/submission"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.submission.enabled") {
		if err := submission.New(submission.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module submission", "error", err)
			os.Exit(1)
		}
	}
}
