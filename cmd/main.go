package main

import (
	"chat-hub/auth"
	"chat-hub/clock"
	"chat-hub/moderation"
	"chat-hub/observability"
	"chat-hub/repositories"
	"chat-hub/runtime"
	"chat-hub/runtime/workers"
	"chat-hub/server"
	"chat-hub/services"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so that defers execute before the process
// exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Core: bus, store, clock
	bus := runtime.NewBroadcastBus(log, config.BusCapacity)
	rooms := repositories.NewRoomRepository()
	messages := repositories.NewMessageRepository()
	members := repositories.NewMembershipRepository()
	wallClock := clock.NewWallClock()

	// 3. Moderation (optional)
	var moderator *moderation.Moderator
	if words := config.CensoredWords(); len(words) > 0 {
		replacement, err := config.CharacterRune()
		if err != nil {
			return err
		}
		moderator, err = moderation.NewModerator(words, replacement)
		if err != nil {
			return fmt.Errorf("moderation setup failed: %w", err)
		}
		log.Info(fmt.Sprintf("%d censored words loaded", len(words)))
	}

	// 4. Service, sessions, HTTP surface
	chatService := services.NewChatService(log, bus, wallClock, rooms, messages, members, moderator)
	sessions := auth.NewSessionManager(config.SessionSecret, config.SessionTTL)
	monitor := observability.NewMonitor(log, bus)
	srv := server.New(log, chatService, bus, sessions, monitor, wallClock)

	// 5. Supervision: background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewTelemetryWorker(log, bus, config.TelemetryInterval))

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: srv.Router()}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sup.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}
