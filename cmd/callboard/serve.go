package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callboard/internal/api"
	"callboard/internal/leads"
	"callboard/internal/server"
	"callboard/internal/session"

	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP server",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging and session dumps",
		},
	},
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cCtx.Bool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	client := api.NewClient(config.APIBaseURL, session.Static{}, time.Duration(config.APITimeoutSec)*time.Second)

	var jwkCache *jwk.Cache
	if config.JWKSURL != "" {
		jwkCache, err = jwk.NewCache(context.Background(), httprc.NewClient())
		if err != nil {
			return fmt.Errorf("failed to initialize jwk cache: %w", err)
		}
		if err := jwkCache.Register(context.Background(), config.JWKSURL); err != nil {
			return fmt.Errorf("failed to register jwks url with cache: %w", err)
		}
	}

	simulator := leads.NewSimulator(logger, time.Duration(config.LeadsIntervalSec)*time.Second)
	if config.LeadsEnabled {
		go simulator.Run(ctx)
	}

	srv, err := server.New(
		config,
		logger,
		client,
		simulator,
		jwkCache,
		config.JWKSURL,
		cCtx.Bool("debug"),
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
