// Command mcgateway listens in place of an EC2-hosted Minecraft server,
// reports its power state on the server list and starts it on login.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/gateway"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Str("app", "mcgateway").
		Logger()

	cfg, err := gateway.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	waker, err := gateway.NewEC2Waker(ctx, cfg.Region, cfg.InstanceID)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up EC2 client")
	}

	gw := gateway.New(cfg, waker, log.Logger)
	srv := &mcwire.Server{
		Addr:             cfg.Listen,
		Handler:          gw.Handle,
		Config:           cfg.Transport,
		Logger:           log.With().Str("component", "server").Logger(),
		HandshakeTimeout: 10 * time.Second,
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Info().Str("signal", s.String()).Msg("shutting down")
		srv.Close()
	}()

	log.Info().
		Str("listen", cfg.Listen).
		Str("instance", cfg.InstanceID).
		Msg("starting gateway")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, mcwire.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
