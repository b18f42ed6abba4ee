package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug        bool
		TestMode     bool
		Env          string
		Build        string
		AppName      string
		RollbarToken string

		Server   serverConfig
		Services servicesConfig
		Mock     mockConfig
		Admin    adminConfig
	}

	serverConfig struct {
		Host            string
		Address         string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	// servicesConfig holds the base URLs of the GeekPlay REST services.
	servicesConfig struct {
		Auth          string
		Profile       string
		Forum         string
		Notifications string
		Contact       string
		Timeout       time.Duration
	}

	mockConfig struct {
		Seed bool
	}

	adminConfig struct {
		Token string
	}
)

// NewConfig loads the configuration from defaults, the optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the upper-cased ENV value, eg. DEV_SERVICES_FORUM.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "GeekPlay")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("services.auth", "http://localhost:3001")
	conf.SetDefault("services.profile", "http://localhost:3002")
	conf.SetDefault("services.forum", "http://localhost:3003")
	conf.SetDefault("services.contact", "http://localhost:3004")
	conf.SetDefault("services.notifications", "http://localhost:3005")
	conf.SetDefault("services.timeout", 10*time.Second)
	conf.SetDefault("mock.seed", true)
	conf.SetDefault("admin.token", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Env:          env,
		Build:        conf.GetString("build"),
		AppName:      conf.GetString("appName"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: serverConfig{
			Host:            conf.GetString("server.host"),
			Address:         conf.GetString("server.address"),
			DebugHost:       conf.GetString("server.debugHost"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
		Services: servicesConfig{
			Auth:          strings.TrimRight(conf.GetString("services.auth"), "/"),
			Profile:       strings.TrimRight(conf.GetString("services.profile"), "/"),
			Forum:         strings.TrimRight(conf.GetString("services.forum"), "/"),
			Notifications: strings.TrimRight(conf.GetString("services.notifications"), "/"),
			Contact:       strings.TrimRight(conf.GetString("services.contact"), "/"),
			Timeout:       conf.GetDuration("services.timeout"),
		},
		Mock:  mockConfig{Seed: conf.GetBool("mock.seed")},
		Admin: adminConfig{Token: conf.GetString("admin.token")},
	}
}
