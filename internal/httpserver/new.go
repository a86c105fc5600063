package httpserver

import (
	"context"
	"errors"
	"net/http"

	"gemini-relay/config"
	"gemini-relay/pkg/gemini"
	"gemini-relay/pkg/log"
	"gemini-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Relay Configuration
	config *config.Config
	gemini gemini.IGemini

	// Monitoring Configuration
	metrics *metrics.Metrics
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Relay Configuration
	Config *config.Config
	Gemini gemini.IGemini

	// Monitoring Configuration
	Metrics *metrics.Metrics
}

// New creates a new HTTPServer with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Relay Configuration
		config: cfg.Config,
		gemini: cfg.Gemini,

		// Monitoring Configuration
		metrics: cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(context.Background()); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler returns the routed gin engine.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Relay Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.gemini == nil {
		return errors.New("gemini is required")
	}

	// Monitoring Configuration (optional)
	// metrics may be nil

	return nil
}
