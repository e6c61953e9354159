package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AuthModeMock = "mock"
	AuthModeHash = "hash"
)

type (
	ServerConfig struct {
		Addr            string
		Host            string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	SessionConfig struct {
		AuthMode         string // mock | hash
		SentinelPassword string // only honoured in mock mode
		CredentialPath   string
		CredentialTTL    time.Duration
	}

	GeminiConfig struct {
		APIKey        string
		Model         string
		Timeout       time.Duration
		RatePerMinute int
	}

	PaymentConfig struct {
		Delay time.Duration
	}

	PreferencesConfig struct {
		Path string
	}

	Config struct {
		Env             string
		Build           string
		Debug           bool
		TestMode        bool
		AppName         string
		SecretKey       string
		RollbarToken    string
		SendgridApiKey  string
		FrontendBaseURL string

		Server      ServerConfig
		Session     SessionConfig
		Gemini      GeminiConfig
		Payment     PaymentConfig
		Preferences PreferencesConfig

		defaultFromEmail string
	}
)

// NewConfig reads the configuration from the environment (and an optional `config/.env.<env>` file).
// Variables are prefixed with the upper-cased environment name, eg. `DEV_SECRETKEY`.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "develop")
	v.SetDefault("appName", "Synapse")
	v.SetDefault("secretKey", "q8vz-3w!x)en1$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("defaultFromEmail", "Synapse <noreply@localhost>")
	v.SetDefault("frontendBaseUrl", "http://localhost:3000")

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)

	v.SetDefault("session.authMode", AuthModeMock)
	v.SetDefault("session.sentinelPassword", "password123")
	v.SetDefault("session.credentialPath", filepath.Join(os.TempDir(), "synapse", "credential"))
	v.SetDefault("session.credentialTtl", 7*24*time.Hour)

	v.SetDefault("gemini.apiKey", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", 20*time.Second)
	v.SetDefault("gemini.ratePerMinute", 30)

	v.SetDefault("payment.delay", 2*time.Second)

	v.SetDefault("preferences.path", filepath.Join(os.TempDir(), "synapse", "preferences.yaml"))

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if wd, err := os.Getwd(); err == nil {
		dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	v.AutomaticEnv()

	return &Config{
		Env:             env,
		Build:           v.GetString("build"),
		Debug:           v.GetBool("debug"),
		TestMode:        v.GetBool("testMode"),
		AppName:         v.GetString("appName"),
		SecretKey:       v.GetString("secretKey"),
		RollbarToken:    v.GetString("rollbarToken"),
		SendgridApiKey:  v.GetString("sendgridApiKey"),
		FrontendBaseURL: v.GetString("frontendBaseUrl"),
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			Host:            v.GetString("server.host"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		Session: SessionConfig{
			AuthMode:         strings.ToLower(v.GetString("session.authMode")),
			SentinelPassword: v.GetString("session.sentinelPassword"),
			CredentialPath:   v.GetString("session.credentialPath"),
			CredentialTTL:    v.GetDuration("session.credentialTtl"),
		},
		Gemini: GeminiConfig{
			APIKey:        v.GetString("gemini.apiKey"),
			Model:         v.GetString("gemini.model"),
			Timeout:       v.GetDuration("gemini.timeout"),
			RatePerMinute: v.GetInt("gemini.ratePerMinute"),
		},
		Payment: PaymentConfig{
			Delay: v.GetDuration("payment.delay"),
		},
		Preferences: PreferencesConfig{
			Path: v.GetString("preferences.path"),
		},
		defaultFromEmail: v.GetString("defaultFromEmail"),
	}
}

// NewTestConfig returns a Config suitable for tests: no network, no delays, everything in `dir`.
func NewTestConfig(dir string) *Config {
	return &Config{
		Env:             "TEST",
		Build:           "test",
		Debug:           false,
		TestMode:        true,
		AppName:         "Synapse",
		SecretKey:       "secret",
		FrontendBaseURL: "http://localhost:3000",
		Server:          ServerConfig{Addr: ":0", Host: "localhost", ShutdownTimeout: time.Second, DisableReqLogs: true},
		Session: SessionConfig{
			AuthMode:         AuthModeMock,
			SentinelPassword: "password123",
			CredentialPath:   filepath.Join(dir, "credential"),
			CredentialTTL:    time.Hour,
		},
		Gemini:           GeminiConfig{Model: "gemini-2.5-flash", Timeout: time.Second, RatePerMinute: 600},
		Preferences:      PreferencesConfig{Path: filepath.Join(dir, "preferences.yaml")},
		defaultFromEmail: "Synapse <noreply@localhost>",
	}
}

func (c *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.defaultFromEmail)
	if err != nil {
		return mail.Address{Name: c.AppName, Address: "noreply@localhost"}
	}
	return *addr
}
