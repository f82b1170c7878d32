// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmedw/folio/adapters/auth"
	"github.com/ahmedw/folio/adapters/blob"
	"github.com/ahmedw/folio/adapters/camera"
	"github.com/ahmedw/folio/adapters/clock"
	"github.com/ahmedw/folio/adapters/hasher"
	foliohttp "github.com/ahmedw/folio/adapters/http"
	"github.com/ahmedw/folio/adapters/http/admin"
	"github.com/ahmedw/folio/adapters/idgen"
	"github.com/ahmedw/folio/adapters/metrics"
	"github.com/ahmedw/folio/adapters/sqlite"
	"github.com/ahmedw/folio/adapters/sysinfo"
	"github.com/ahmedw/folio/adapters/vision"
	"github.com/ahmedw/folio/config"
	"github.com/ahmedw/folio/ports"
	"github.com/ahmedw/folio/web"
)

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Holder
	DB         *sqlite.DB
	HTTPServer *http.Server
	Metrics    *metrics.Collector
}

// New creates and initializes the application from a config file path.
// An empty path falls back to environment variables.
func New(configPath string) (*App, error) {
	logger := newLogger(os.Getenv("FOLIO_LOG_LEVEL"), os.Getenv("FOLIO_LOG_FORMAT"))

	var holder *config.Holder
	if configPath != "" {
		h, err := config.NewHolder(configPath, logger)
		if err != nil {
			return nil, err
		}
		holder = h
	} else {
		cfg, err := config.LoadWithFallback("")
		if err != nil {
			return nil, err
		}
		holder = config.NewStaticHolder(cfg, logger)
	}

	cfg := holder.Get()
	logger = newLogger(cfg.Logging.Level, cfg.Logging.Format)

	a := &App{
		Logger: logger,
		Config: holder,
	}

	// Database
	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	a.DB = db
	logger.Info().Str("dsn", cfg.Database.DSN).Msg("database ready")

	// Metrics
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
		logger.Info().Msg("prometheus metrics enabled")
	}

	// Stores
	projects := sqlite.NewProjectStore(db)
	testCases := sqlite.NewTestCaseStore(db)
	testimonials := sqlite.NewTestimonialStore(db)

	files, err := blob.NewStore(cfg.Storage.Dir, cfg.Storage.PublicPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init file store: %w", err)
	}

	// Auth
	clk := clock.Real{}
	tokens, err := auth.NewTokenService(cfg.Auth.SessionSecret, clk)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init token service: %w", err)
	}

	iterations := cfg.Auth.HashIterations
	if iterations == 0 {
		iterations = hasher.DefaultIterations
	}
	pwHasher, err := hasher.NewPBKDF2(cfg.Auth.PasswordSalt, iterations)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init hasher: %w", err)
	}

	// External collaborators
	system := sysinfo.NewCollector(logger)

	var analyzer ports.ImageAnalyzer
	if cfg.Vision.Enabled {
		client, err := vision.NewClient(cfg.Vision.BaseURL, cfg.Vision.APIKey, cfg.Vision.Model, cfg.Vision.Timeout, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("init vision client: %w", err)
		}
		analyzer = client
	}

	var cam ports.Camera
	if cfg.Camera.Enabled {
		cam = camera.NewLibcamera(cfg.Camera.Binary, nil, cfg.Camera.TmpDir, cfg.Camera.Timeout)
	}

	// Handlers
	adminHandler := admin.NewHandler(admin.Deps{
		Tokens: tokens,
		Credentials: admin.Credentials{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		Hasher:     pwHasher,
		Projects:   projects,
		TestCases:  testCases,
		Files:      files,
		System:     system,
		Camera:     cam,
		Analyzer:   analyzer,
		IDGen:      idgen.UUID{},
		Clock:      clk,
		Logger:     logger,
		Metrics:    a.Metrics,
		Production: cfg.IsProduction(),
	})

	webHandler, err := web.NewHandler(web.Deps{
		Tokens:       tokens,
		Projects:     projects,
		TestCases:    testCases,
		Testimonials: testimonials,
		Logger:       logger,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init web handler: %w", err)
	}

	publicHandler := foliohttp.NewPublicHandler(projects, testimonials, logger)
	healthHandler := foliohttp.NewHealthHandler(db.DB)

	router := foliohttp.NewRouter(logger, foliohttp.RouterConfig{
		Metrics:       a.Metrics,
		MetricsPath:   cfg.Metrics.Path,
		EnableOpenAPI: cfg.OpenAPI.Enabled,
		Health:        healthHandler,
		Public:        publicHandler,
		AuthHandler:   adminHandler.AuthRouter(),
		AdminAPI:      adminHandler.Router(),
		System: &foliohttp.SystemEndpoints{
			RequireAuth:  adminHandler.RequireAuth,
			SystemInfo:   adminHandler.SystemInfoHandler,
			CaptureImage: adminHandler.CaptureImage,
			AnalyzeImage: adminHandler.AnalyzeImage,
		},
		WebHandler: webHandler.Router(),
		UploadsDir: files.Dir(),
	})

	a.HTTPServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Hot reload: log level, admin credentials and the vision client
	// follow config changes.
	holder.OnChange(func(c *config.Config) {
		if level, err := zerolog.ParseLevel(c.Logging.Level); err == nil {
			zerolog.SetGlobalLevel(level)
		}

		adminHandler.UpdateCredentials(admin.Credentials{
			Username:     c.Auth.AdminUsername,
			PasswordHash: c.Auth.AdminPasswordHash,
		})

		if !c.Vision.Enabled {
			adminHandler.SetAnalyzer(nil)
			return
		}
		client, err := vision.NewClient(c.Vision.BaseURL, c.Vision.APIKey, c.Vision.Model, c.Vision.Timeout, logger)
		if err != nil {
			logger.Error().Err(err).Msg("vision client rebuild failed, keeping previous")
			return
		}
		adminHandler.SetAnalyzer(client)
	})

	return a, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	// Config watchers
	if err := a.Config.WatchFile(); err != nil {
		a.Logger.Warn().Err(err).Msg("config file watching disabled")
	} else {
		a.Logger.Debug().
			Strs("fields", config.ReloadableFields()).
			Msg("hot reload enabled")
	}
	a.Config.WatchSignals()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.Config.Stop()

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("database close error")
		}
	}

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

func newLogger(levelStr, format string) zerolog.Logger {
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
