package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	_ "time/tzdata"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	timecardService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/timecard"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		logger.Error("Invalid engine configuration", "error", err)
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL()
	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(dsn, logger); err != nil {
			logger.Error("Error running migrations", "error", err)
			os.Exit(1)
		}
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	leaveNoteRepo := postgresql.NewLeaveNoteRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	timecardSvc := timecardService.NewTimecardService(
		engineCfg,
		userRepo,
		punchRepo,
		leaveNoteRepo,
		cfg.Report.FetchTimeout,
	)

	timecardHandler := appHTTP.NewTimecardHandler(timecardSvc)

	router := appHTTP.NewRouter(logger, cfg.App.FrontendURL, JWTService, timecardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Server running", "addr", "http://localhost"+port, "reference_timezone", engineCfg.ReferenceTimeZone.String())
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}
