package sys

import (
	"github.com/ribgsilva/note-list-api/platform/env"
	"go.uber.org/zap"
	"time"
)

// Config contains all the configs gathered from env vars
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
		RateLimit       int
		RateBurst       int
		StaticDir       string
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Store struct {
		Host             string
		Port             string
		User             string
		Pass             string
		Key              string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		MaxRetries       int
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// Load reads every config shared by the binaries. Configs only one binary needs are read by it.
func Load(log *zap.SugaredLogger) Config {
	var c Config
	c.Http.Port = env.OrDefault(log, "HTTP_PORT", "3000")
	c.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	c.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	c.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	c.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	c.Http.RateLimit = env.IntDefault(log, "HTTP_RATE_LIMIT", "100")
	c.Http.RateBurst = env.IntDefault(log, "HTTP_RATE_BURST", "20")
	c.Http.StaticDir = env.OrDefault(log, "STATIC_DIR", "public")
	c.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	c.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+c.Http.Port)
	c.Store.Host = env.OrDefault(log, "REDIS_HOST", "redis")
	c.Store.Port = env.OrDefault(log, "REDIS_PORT", "6379")
	c.Store.User = env.OrDefault(log, "REDIS_USER", "")
	c.Store.Pass = env.OrDefault(log, "REDIS_PASS", "")
	c.Store.Key = env.OrDefault(log, "STORE_KEY", "notes")
	c.Store.PingTimeout = env.DurationDefault(log, "STORE_PING_TIMEOUT", "2s")
	c.Store.OperationTimeout = env.DurationDefault(log, "STORE_OPERATION_TIMEOUT", "5s")
	c.Store.MaxRetries = env.IntDefault(log, "STORE_MAX_RETRIES", "10")
	c.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "note-list-api")
	c.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	c.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	c.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	c.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	return c
}

// StoreAddr is the host:port of the redis holding the notes
func (c Config) StoreAddr() string {
	return c.Store.Host + ":" + c.Store.Port
}
