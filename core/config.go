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

// Config holds the runtime settings of the portal.
type Config struct {
	AppName string
	Env     string
	Debug   bool

	// DemoAuth makes login accept any non-empty password. This is the
	// documented demo-mode contract; disabling it turns on real bcrypt
	// verification against the hash stored at signup.
	DemoAuth bool

	// SeedDemoData loads the demo snapshot (courses, timetable, notices
	// and accounts) into the store at startup.
	SeedDemoData bool

	// LoginDelay is an artificial pause inserted by the front-end before
	// reporting login/signup results. Purely perceived-latency UX.
	LoginDelay time.Duration
}

// NewConfig loads configuration from defaults, an optional .env file and
// environment variables (prefixed with ENV, e.g. DEV_DEBUG).
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("appName", "Meridian Portal")
	conf.SetDefault("debug", true)
	conf.SetDefault("demoAuth", true)
	conf.SetDefault("seedDemoData", true)
	conf.SetDefault("loginDelay", 600*time.Millisecond)

	env := os.Getenv("ENV") // DEV (local; default), TEST, PROD
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

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
		AppName:      conf.GetString("appName"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		DemoAuth:     conf.GetBool("demoAuth"),
		SeedDemoData: conf.GetBool("seedDemoData"),
		LoginDelay:   conf.GetDuration("loginDelay"),
	}
}
