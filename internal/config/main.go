//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env             string
	Port            int
	Throttle        bool
	WebURL          string
	APIURL          string
	SentryDsn       string
	SampleRate      float64
	SessionExpiry   string
	RefreshInterval string
	Release         string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.APIURL = parser.EnvStr("API_URL", "http://127.0.0.1:8001")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.SessionExpiry = parser.EnvStr("SESSION_EXPIRY", "1h")
	cfg.RefreshInterval = parser.EnvStr("REFRESH_INTERVAL", "1m")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	return cfg
}
