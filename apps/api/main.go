package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register the /debug/pprof handlers
	"os"

	echoapi "github.com/geekplay/foro/apps/api/echo"
	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/form"
	"github.com/geekplay/foro/core/item"
	geekplaysvc "github.com/geekplay/foro/services/geekplay"
	logsvc "github.com/geekplay/foro/services/logger"
	inmemdb "github.com/geekplay/foro/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up the mock item store
	var seed []item.Item
	if conf.Mock.Seed {
		seed = item.DefaultItems()
	}
	db, err := inmemdb.Open(seed...)
	if err != nil {
		dbLogger.Fatal(fmt.Sprintf("opening item store: %v", err), err)
	}
	dbLogger.Info(fmt.Sprintf("item store ready : %d items", len(seed)))

	// set up services
	hc := geekplaysvc.NewHTTPClient(conf)
	itemSvc := item.NewService(inmemdb.NewItemRepository(db))
	authSvc := geekplaysvc.NewAuthService(conf.Services.Auth, hc)
	profileSvc := geekplaysvc.NewProfileService(conf.Services.Profile, hc)
	adminSvc := geekplaysvc.NewAdminService(conf.Services.Auth, hc)
	forumSvc := geekplaysvc.NewForumService(conf.Services.Forum, hc)
	notifSvc := geekplaysvc.NewNotificationService(conf.Services.Notifications, hc)
	contactSvc := geekplaysvc.NewContactService(conf.Services.Contact, hc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validator := form.Default()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:            conf,
			Logger:          logger,
			Validator:       validator,
			ItemSvc:         itemSvc,
			AuthSvc:         authSvc,
			ProfileSvc:      profileSvc,
			AdminSvc:        adminSvc,
			ForumSvc:        forumSvc,
			NotificationSvc: notifSvc,
			ContactSvc:      contactSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
