// Package bootstrap owns the service lifecycle: configuration loading,
// dependency initialisation in order, HTTP serving and graceful shutdown.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	domainauth "dugout-server-go/internal/domain/auth"
	authmodel "dugout-server-go/internal/domain/auth/model"
	"dugout-server-go/internal/domain/roster"
	rostercache "dugout-server-go/internal/domain/roster/cache"
	"dugout-server-go/internal/domain/scout"
	_ "dugout-server-go/internal/domain/scout/openai"
	platformconfig "dugout-server-go/internal/platform/config"
	platformerrors "dugout-server-go/internal/platform/errors"
	platformlogging "dugout-server-go/internal/platform/logging"
	platformstorage "dugout-server-go/internal/platform/storage"
	httptransport "dugout-server-go/internal/transport/http"
	httppages "dugout-server-go/internal/transport/http/pages"
	httpwebapi "dugout-server-go/internal/transport/http/webapi"
)

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	config        *platformconfig.Config
	configPath    string
	logger        *platformlogging.Logger
	db            *gorm.DB
	authProvider  domainauth.Provider
	tokenIssuer   *domainauth.TokenIssuer
	rosterCache   rostercache.Store
	rosterService *roster.Service
	scoutProvider scout.Provider
}

// Options tweaks the bootstrap for different entry points.
type Options struct {
	ConfigPath string
}

// Run drives the whole service lifecycle and blocks until shutdown.
func Run(ctx context.Context, opts Options) error {
	state := &appState{configPath: opts.ConfigPath}

	if err := executeInitSteps(ctx, InitGraph(), state); err != nil {
		return err
	}

	logger := state.logger
	defer logger.Close()

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := state.rosterCache.Close(closeCtx); err != nil {
			logger.WarnTag("BOOT", "roster cache close failed: %v", err)
		}
	}()

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if _, err := startHTTPServer(state, group, groupCtx); err != nil {
		cancel()
		return err
	}

	logger.InfoTag("BOOT", "all services started")
	return waitForShutdown(signalCtx, cancel, logger, group)
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(platformerrors.KindBootstrap, "execute init steps", "nil bootstrap state")
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}
			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

// InitGraph lists the startup steps in dependency order.
func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "storage:open-database",
			Title:     "Open credential database",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      platformerrors.KindStorage,
			Execute:   openDatabaseStep,
		},
		{
			ID:        "auth:init-provider",
			Title:     "Initialise authentication",
			DependsOn: []string{"storage:open-database"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initAuthStep,
		},
		{
			ID:        "roster:init-service",
			Title:     "Initialise roster service",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initRosterStep,
		},
		{
			ID:        "scout:init-provider",
			Title:     "Initialise scout provider",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initScoutStep,
		},
	}
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader().WithPath(state.configPath).Load()
	if err != nil {
		return err
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	logger, err := platformlogging.New(platformlogging.Config{
		Level:    state.config.Log.Level,
		Dir:      state.config.Log.Dir,
		Filename: state.config.Log.File,
	})
	if err != nil {
		return err
	}
	state.logger = logger
	logger.InfoTag("BOOT", "logging ready [%s] config from %s", state.config.Log.Level, state.configPath)
	return nil
}

func openDatabaseStep(_ context.Context, state *appState) error {
	db, err := platformstorage.Open(state.config.Database.Path)
	if err != nil {
		return err
	}
	state.db = db
	state.logger.InfoTag("BOOT", "credential database ready at %s", state.config.Database.Path)
	return nil
}

func initAuthStep(ctx context.Context, state *appState) error {
	cfg := state.config.Auth
	users := platformstorage.NewUserRepository(state.db)

	if seed := cfg.Seed; seed.Username != "" && seed.PasswordHash != "" {
		err := users.EnsureSeedUser(ctx, authmodel.User{
			Username:     seed.Username,
			PasswordHash: seed.PasswordHash,
			Nickname:     seed.Nickname,
			Email:        seed.Email,
		})
		if err != nil {
			return err
		}
		state.logger.InfoTag("AUTH", "seed user %s ensured", seed.Username)
	}

	provider, err := domainauth.Create(cfg.Provider, domainauth.Options{
		Store:  users,
		Hasher: domainauth.NewPasswordHasher(cfg.BcryptCost),
		Logger: state.logger,
	})
	if err != nil {
		return err
	}

	issuer, err := domainauth.NewTokenIssuer(cfg.Secret, cfg.SessionTTL)
	if err != nil {
		return err
	}

	state.authProvider = provider
	state.tokenIssuer = issuer
	state.logger.InfoTag("AUTH", "provider %q ready, session ttl %s", cfg.Provider, issuer.TTL())
	return nil
}

func initRosterStep(_ context.Context, state *appState) error {
	cfg := state.config.Roster

	cacheCfg := rostercache.Config{
		Driver: cfg.Cache.Driver,
		TTL:    cfg.Cache.TTL,
	}
	if cfg.Cache.Driver == rostercache.DriverRedis {
		cacheCfg.Redis = &rostercache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Username: cfg.Cache.Redis.Username,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		}
	}
	cacheStore, err := rostercache.New(cacheCfg)
	if err != nil {
		return err
	}

	client := roster.NewClient(cfg.APIURL, cfg.Timeout)
	state.rosterCache = cacheStore
	state.rosterService = roster.NewService(client, cacheStore, state.logger)
	state.logger.InfoTag("ROSTER", "upstream %s, cache driver %q ttl %s", cfg.APIURL, cfg.Cache.Driver, cfg.Cache.TTL)
	return nil
}

func initScoutStep(_ context.Context, state *appState) error {
	cfg := state.config.Scout

	providerName := cfg.Provider
	if providerName == "openai" && cfg.OpenAI.APIKey == "" {
		state.logger.WarnTag("SCOUT", "no OpenAI API key configured, using static descriptions")
		providerName = "static"
	}

	provider, err := scout.Create(providerName, &scout.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		ModelName:   cfg.OpenAI.Model,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
		Logger:      state.logger,
	})
	if err != nil {
		return err
	}

	state.scoutProvider = provider
	state.logger.InfoTag("SCOUT", "description provider %q ready", providerName)
	return nil
}

func startHTTPServer(state *appState, g *errgroup.Group, groupCtx context.Context) (*http.Server, error) {
	config := state.config
	logger := state.logger

	authService, err := httpwebapi.NewAuthService(state.authProvider, state.tokenIssuer, logger)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindTransport, "webapi:new-auth-service", "failed to create auth service", err)
	}

	httpRouter, err := httptransport.Build(httptransport.Options{
		Config:         config,
		Logger:         logger,
		AuthMiddleware: authService.Middleware(),
		StaticRoot:     config.Web.StaticRoot,
		TemplatesGlob:  config.Web.TemplatesGlob,
	})
	if err != nil {
		return nil, err
	}
	router := httpRouter.Engine

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			httptransport.RespondError(c, http.StatusNotFound, "not found", nil)
			return
		}
		c.Redirect(http.StatusFound, "/")
	})

	playersService, err := httpwebapi.NewPlayersService(state.rosterService, state.scoutProvider, logger)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindTransport, "webapi:new-players-service", "failed to create players service", err)
	}

	pagesService, err := httppages.NewService(state.rosterService, state.scoutProvider, logger)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindTransport, "pages:new-service", "failed to create pages service", err)
	}

	if err := authService.Register(groupCtx, httpRouter.API, httpRouter.Secured); err != nil {
		return nil, err
	}
	if err := playersService.Register(groupCtx, httpRouter.Secured); err != nil {
		return nil, err
	}
	if err := pagesService.Register(groupCtx, router, authService.PageGuard()); err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:    config.Server.IP + ":" + strconv.Itoa(config.Server.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.InfoTag("HTTP", "server listening on http://localhost:%d", config.Server.Port)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("HTTP", "server shutdown failed: %v", err)
			} else {
				logger.InfoTag("HTTP", "server shut down cleanly")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("HTTP", "server failed: %v", err)
			return err
		}
		return nil
	})

	return httpServer, nil
}

func waitForShutdown(ctx context.Context, cancel context.CancelFunc, logger *platformlogging.Logger, g *errgroup.Group) error {
	<-ctx.Done()
	logger.InfoTag("BOOT", "shutdown signal received, cleaning up")

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("BOOT", "error during shutdown: %v", err)
			return err
		}
		logger.InfoTag("BOOT", "all services stopped")
	case <-time.After(15 * time.Second):
		logger.ErrorTag("BOOT", "shutdown timed out")
		return errors.New("shutdown timed out")
	}
	return nil
}
