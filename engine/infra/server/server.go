// Package server assembles the HTTP surface: middleware, route
// registration, and the listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/shopdash/shopdash/engine/auth"
	authrouter "github.com/shopdash/shopdash/engine/auth/router"
	"github.com/shopdash/shopdash/engine/auth/token"
	authuc "github.com/shopdash/shopdash/engine/auth/uc"
	mongostore "github.com/shopdash/shopdash/engine/infra/mongo"
	paymentrouter "github.com/shopdash/shopdash/engine/payment/router"
	"github.com/shopdash/shopdash/engine/payment/stripe"
	paymentuc "github.com/shopdash/shopdash/engine/payment/uc"
	"github.com/shopdash/shopdash/pkg/config"
	"github.com/shopdash/shopdash/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wires the stores, gateway, and routers together and runs the
// listener.
type Server struct {
	cfg   *config.Config
	log   logger.Logger
	store *mongostore.Store
	redis *redis.Client
}

// New creates a server over an already-connected store.
func New(cfg *config.Config, log logger.Logger, store *mongostore.Store, redisClient *redis.Client) *Server {
	return &Server{cfg: cfg, log: log, store: store, redis: redisClient}
}

// buildRouter constructs the gin engine with all middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	if s.cfg.Server.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware(s.log))
	engine.Use(LoggerMiddleware())
	engine.Use(CORSMiddleware(s.cfg.CORS))

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard server is running")
	})

	tokens := token.NewService([]byte(s.cfg.Auth.TokenSecret), s.cfg.Auth.TokenTTL)
	var denylist token.Denylist
	if s.redis != nil {
		denylist = token.NewRedisDenylist(s.redis)
	}
	userRepo := s.store.Users()
	middleware := auth.NewMiddleware(tokens, denylist, userRepo)

	base := engine.Group("")
	authFactory := authuc.NewFactory(userRepo)
	authrouter.RegisterRoutes(base, authFactory, tokens, denylist, middleware, s.cfg.Server.Production)

	gateway := stripe.NewClient(s.cfg.Stripe.SecretKey)
	paymentFactory := paymentuc.NewFactory(s.store.Payments(), gateway)
	paymentrouter.RegisterRoutes(base, paymentFactory, middleware)

	return engine
}

// Run serves until the context is canceled or a termination signal arrives,
// then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.buildRouter(),
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "port", s.cfg.Server.Port, "production", s.cfg.Server.Production)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
