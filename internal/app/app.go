package app

import (
	"context"
	"net/http"

	"github.com/quotely/formrelay/internal/pkg/clock"
	"github.com/quotely/formrelay/internal/pkg/config"
	"github.com/quotely/formrelay/internal/pkg/instrument"
	"github.com/quotely/formrelay/internal/pkg/mail"
	"github.com/quotely/formrelay/internal/pkg/router"
	"github.com/quotely/formrelay/internal/pkg/uid"
	"github.com/quotely/formrelay/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID

	// resources
	mail mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
