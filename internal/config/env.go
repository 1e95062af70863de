package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	AppAddr string `envconfig:"APP_ADDR" default:":3008"`
	AppEnv  string `envconfig:"APP_ENV" default:"development"`
	GinMode string `envconfig:"GIN_MODE"`

	DBDSN   string `envconfig:"DB_DSN" default:"root:@tcp(127.0.0.1:3306)/bookings?parseTime=true"`
	DBTable string `envconfig:"DB_TABLE" default:"bookings"`

	TimeslotServiceURL string        `envconfig:"TIMESLOT_SERVICE_URL" default:"http://localhost:3006"`
	TimeslotTimeout    time.Duration `envconfig:"TIMESLOT_TIMEOUT" default:"5s"`

	AuthServiceURL string        `envconfig:"AUTH_SERVICE_URL" default:"http://localhost:3000/api/auth"`
	AuthTimeout    time.Duration `envconfig:"AUTH_TIMEOUT" default:"5s"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] .env not found, using process environment")
	}
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, err
	}
	for i, o := range env.CORSAllowedOrigins {
		env.CORSAllowedOrigins[i] = strings.TrimSpace(o)
	}
	return env, nil
}

// IsDevelopment controls whether unknown error details reach the client.
func (e Env) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(e.AppEnv), "development")
}
