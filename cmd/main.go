package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"

	discordclient "insultbot/clients/discord"
	insultclient "insultbot/clients/insult"
	"insultbot/config"
	"insultbot/core/log"
	"insultbot/handlers"
	insultusecase "insultbot/usecases/insult"
)

type Options struct {
	EnvFile string `long:"env-file" default:".env" description:"Path to a .env file to load before reading the environment"`
	Debug   bool   `long:"debug" description:"Enable debug logging (overrides LOG_LEVEL)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.EnvFile)
	if err != nil {
		return err
	}

	if opts.Debug {
		log.SetLevel(slog.LevelDebug)
	} else {
		log.SetLevel(cfg.LogLevel)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	discordClient := discordclient.NewDiscordClient(session)
	insultClient := insultclient.NewInsultClient(cfg.InsultAPIConfig.BaseURL, cfg.InsultAPIConfig.Timeout)
	insultUseCase := insultusecase.NewInsultUseCase(discordClient, insultClient)
	eventsHandler := handlers.NewDiscordEventsHandler(session, insultUseCase, cfg.HandlerWorkers)

	if err := eventsHandler.StartBot(); err != nil {
		return err
	}
	defer eventsHandler.StopBot()

	var healthServer *http.Server
	if cfg.HealthPort != "" {
		router := mux.NewRouter()
		handlers.NewHealthHandler(eventsHandler.IsReady).SetupEndpoints(router)
		healthServer = &http.Server{
			Addr:              ":" + cfg.HealthPort,
			Handler:           router,
			ReadHeaderTimeout: 30 * time.Second,
		}
		go func() {
			log.Info("✅ Health endpoint listening", "addr", "http://localhost"+healthServer.Addr+"/health")
			if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("❌ Health server error", "error", err)
			}
		}()
	}

	return waitForShutdown(healthServer)
}

func waitForShutdown(healthServer *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Info("🛑 Shutdown signal received, cleaning up...")

	if healthServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := healthServer.Shutdown(ctx); err != nil {
		log.Error("❌ Health server shutdown error", "error", err)
		return err
	}

	log.Info("✅ Health server stopped gracefully")
	return nil
}
