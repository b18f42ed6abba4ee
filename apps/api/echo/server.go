package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/account"
	"github.com/geekplay/foro/core/contact"
	"github.com/geekplay/foro/core/form"
	"github.com/geekplay/foro/core/forum"
	"github.com/geekplay/foro/core/item"
	"github.com/geekplay/foro/core/notification"
)

type (
	ServerDeps struct {
		Conf      *core.Config
		Logger    core.Logger
		Validator *form.Validator

		ItemSvc         *item.Service
		AuthSvc         account.AuthService
		ProfileSvc      account.ProfileService
		AdminSvc        account.AdminService
		ForumSvc        forum.Service
		NotificationSvc notification.Service
		ContactSvc      contact.Service
	}

	Server struct {
		conf     *core.Config
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		conf:     deps.Conf,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if deps.Validator == nil {
		deps.Validator = form.Default()
	}
	s.setup(deps)
	return s
}

func (s *Server) setup(deps ServerDeps) {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger)
	s.app.Debug = s.conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	auth := bearerAuth()

	registerItemAPI(v1, deps.ItemSvc)
	registerFormAPI(v1, deps.Validator)
	registerAccountAPI(v1, auth, deps.Validator, deps.AuthSvc, deps.ProfileSvc)
	registerForumAPI(v1, auth, deps.Validator, deps.ForumSvc)
	registerNotificationAPI(v1, auth, deps.NotificationSvc)
	registerContactAPI(v1, deps.Validator, deps.ContactSvc)
	registerAdminAPI(v1, auth, deps.AdminSvc)
}

// Start listens on the configured address. Listen errors are sent to Errors().
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

// ShutdownSignal delivers SIGINT and SIGTERM.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.conf.AppName+" API!")
}
