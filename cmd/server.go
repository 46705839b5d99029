package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"votehall/internal/config"
	"votehall/internal/core"
	"votehall/internal/db"
	"votehall/internal/http/handler"
	"votehall/internal/http/handler/middleware"
	"votehall/internal/http/payload"
	"votehall/internal/http/server"
	"votehall/internal/http/view"
	"votehall/internal/repository"
	"votehall/pkg/jwt"
	"votehall/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("votehall", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger("votehall", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewVotingRepository(dbConn)

	var admins []repository.User
	if config.Admin != nil {
		admin, err := core.NewAccount(core.Registration{
			Username: config.Admin.Username,
			Email:    config.Admin.Email,
			Password: config.Admin.Password,
		}, true)
		if err != nil {
			logger.Errorw("invalid administrator account", "error", err)
			return err
		}
		admins = append(admins, admin)
	}

	err = repo.MigrateAndSeed(context.Background(), admins)
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// election
	election := core.NewElection(
		logger,
		repo,
		jwtService,
		config.SessionTTL)

	views, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	voteHlr := handler.NewVoteHandler(
		logger,
		payload.DecodeValidator{},
		election,
		views,
		config.CookieSecure)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewSessionMiddleware(logger, election, config.CookieSecure).Session(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Home, voteHlr.HandleHome)
	mux.HandleFunc(handler.NotFound, voteHlr.HandleNotFound)
	mux.HandleFunc(handler.Health, voteHlr.HandleHealth)
	mux.HandleFunc(handler.RegisterForm, voteHlr.HandleRegisterForm)
	mux.HandleFunc(handler.Register, voteHlr.HandleRegister)
	mux.HandleFunc(handler.LoginForm, voteHlr.HandleLoginForm)
	mux.HandleFunc(handler.Login, voteHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, voteHlr.HandleLogout)
	mux.HandleFunc(handler.ListNominees, voteHlr.HandleListNominees)
	mux.HandleFunc(handler.NewNominee, voteHlr.HandleNewNominee)
	mux.HandleFunc(handler.CreateNominee, voteHlr.HandleCreateNominee)
	mux.HandleFunc(handler.ShowNominee, voteHlr.HandleShowNominee)
	mux.HandleFunc(handler.CastVote, voteHlr.HandleCastVote)
	mux.HandleFunc(handler.MyVotes, voteHlr.HandleMyVotes)
	mux.HandleFunc(handler.Results, voteHlr.HandleResults)
	mux.HandleFunc(handler.AdminVotes, voteHlr.HandleAdminVotes)
	mux.HandleFunc(handler.RemoveVote, voteHlr.HandleRemoveVote)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
