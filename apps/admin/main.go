package main

import (
	"log"
	"os"

	"github.com/geekplay/foro/core"
	geekplaysvc "github.com/geekplay/foro/services/geekplay"
	logsvc "github.com/geekplay/foro/services/logger"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// start CLI
	hc := geekplaysvc.NewHTTPClient(conf)
	cli := commandLine{
		out:      os.Stdout,
		token:    conf.Admin.Token,
		authSvc:  geekplaysvc.NewAuthService(conf.Services.Auth, hc),
		adminSvc: geekplaysvc.NewAdminService(conf.Services.Auth, hc),
		forumSvc: geekplaysvc.NewForumService(conf.Services.Forum, hc),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}
