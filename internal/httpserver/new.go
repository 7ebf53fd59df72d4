package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	currencyHTTP "travel-planner/internal/currency/delivery/http"
	"travel-planner/internal/middleware"
	packingHTTP "travel-planner/internal/packing/delivery/http"
	weatherHTTP "travel-planner/internal/weather/delivery/http"
	"travel-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	packingHandler  packingHTTP.Handler
	weatherHandler  weatherHTTP.Handler
	currencyHandler currencyHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Domains
	PackingHandler  packingHTTP.Handler
	WeatherHandler  weatherHTTP.Handler
	CurrencyHandler currencyHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		packingHandler:  cfg.PackingHandler,
		weatherHandler:  cfg.WeatherHandler,
		currencyHandler: cfg.CurrencyHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.packingHandler == nil {
		return errors.New("packing handler is required")
	}
	if srv.weatherHandler == nil {
		return errors.New("weather handler is required")
	}
	if srv.currencyHandler == nil {
		return errors.New("currency handler is required")
	}
	return nil
}
