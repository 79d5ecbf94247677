package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarwatch/internal/handlers"
	"solarwatch/internal/logger"
	"solarwatch/internal/repository"
	"solarwatch/internal/server"
	"solarwatch/internal/service"

	"github.com/spf13/viper"
)

const defaultSimTick = 5 * time.Second

// @title        solarwatch API
// @version      1.0
// @description  Solar plant monitoring: live snapshots, history, alerts, panel health, AI assistant.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	if err := repos.SeedIfEmpty(context.Background()); err != nil {
		log.Fatalw("failed to seed database", "err", err)
	}

	services := service.NewService(repos, service.Config{
		JWTSigningKey:  viper.GetString("auth.signing_key"),
		GeminiAPIKey:   viper.GetString("gemini.api_key"),
		GeminiModel:    viper.GetString("gemini.model"),
		HistoryMaxDays: viper.GetInt("history.max_days"),
	})
	if viper.GetString("gemini.api_key") == "" {
		log.Warnw("GEMINI_API_KEY not set; assistant endpoints will return 503")
	}
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start telemetry simulator (via composed service)
	go services.Simulator.Run(ctx, simTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	// env overrides for deploy-time and secret values
	if err := viper.BindEnv("port", "PORT"); err != nil {
		return err
	}
	if err := viper.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return err
	}
	if err := viper.BindEnv("auth.signing_key", "JWT_SIGNING_KEY"); err != nil {
		return err
	}

	return viper.ReadInConfig()
}

// simTick reads the simulator interval from config, falling back to the default.
func simTick() time.Duration {
	if d := viper.GetDuration("simulator.tick"); d > 0 {
		return d
	}
	return defaultSimTick
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "solarwatch.db")
		dbPath = "solarwatch.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
