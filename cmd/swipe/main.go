package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/eventswipe/internal/booking/careerhub"
	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/common/network"
	"github.com/KirkDiggler/eventswipe/internal/common/uuid"
	"github.com/KirkDiggler/eventswipe/internal/config"
	"github.com/KirkDiggler/eventswipe/internal/handlers/api"
	"github.com/KirkDiggler/eventswipe/internal/handlers/console"
	"github.com/KirkDiggler/eventswipe/internal/handlers/discord"
	"github.com/KirkDiggler/eventswipe/internal/monitoring"
	"github.com/KirkDiggler/eventswipe/internal/repositories/attendance"
	"github.com/KirkDiggler/eventswipe/internal/repositories/unsaved"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
	"github.com/KirkDiggler/eventswipe/internal/services/snapshot"
	"github.com/KirkDiggler/eventswipe/internal/services/submission"
)

func main() {
	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	cancel()

	clk := clock.New()
	uuidGen := uuid.New()

	// Initialize repositories
	redisLedger, err := unsaved.NewRedis(&unsaved.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create unsaved ledger: %v", err)
	}

	// identifiers Redis rejects are held in memory until the next write
	ledger, err := unsaved.NewFallback(redisLedger)
	if err != nil {
		log.Fatalf("Failed to create unsaved ledger: %v", err)
	}

	attendanceRepo, err := attendance.NewRedis(&attendance.Config{
		RedisClient:   redisClient,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create attendance repository: %v", err)
	}

	provider, err := careerhub.New(&careerhub.Config{
		Host:              cfg.ProviderHost,
		APIID:             cfg.APIID,
		APISecret:         cfg.APISecret,
		IDPattern:         cfg.IDPattern,
		RequestsPerSecond: cfg.ProviderRPS,
		Clock:             clk,
	})
	if err != nil {
		log.Fatalf("Failed to create booking system client: %v", err)
	}
	if !cfg.ProviderConfigured() {
		log.Println("Booking system is not configured, working offline only")
	}

	snap := snapshot.New()
	defer snap.Close()

	modeController, err := mode.New(&mode.Config{
		Checker:       network.NewDNSChecker(cfg.ConnectivityHost, cfg.ConnectivityProbe),
		RemoteEnabled: cfg.ProviderConfigured(),
	})
	if err != nil {
		log.Fatalf("Failed to create mode controller: %v", err)
	}

	queue, err := submission.New(&submission.Config{
		Provider:      provider,
		Ledger:        ledger,
		Snapshot:      snap,
		Mode:          modeController,
		Clock:         clk,
		Workers:       cfg.EntrySlots,
		QueueSize:     cfg.QueueSize,
		SubmitTimeout: cfg.SubmitTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create submission queue: %v", err)
	}

	checkinSvc, err := checkin.New(&checkin.Config{
		Provider:         provider,
		Snapshot:         snap,
		Mode:             modeController,
		Queue:            queue,
		Ledger:           ledger,
		Attendance:       attendanceRepo,
		Clock:            clk,
		UUID:             uuidGen,
		CheckBookingList: cfg.CheckBookingList,
		CheckWaitingList: cfg.CheckWaitingList,
	})
	if err != nil {
		log.Fatalf("Failed to create check-in service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := checkinSvc.Start(ctx); err != nil {
		log.Fatalf("Failed to start check-in service: %v", err)
	}

	if cfg.Online && cfg.ProviderConfigured() {
		if _, err := checkinSvc.GoOnline(ctx); err != nil {
			log.Printf("Starting offline: %v", err)
		}
	}

	if cfg.EventKey != "" {
		out, err := checkinSvc.LoadEvent(ctx, &checkin.LoadEventInput{
			EventKey:       cfg.EventKey,
			UseWaitingList: cfg.CheckWaitingList,
		})
		if err != nil {
			log.Printf("Failed to load event %s: %v", cfg.EventKey, err)
		} else {
			log.Printf("Loaded event %s (%s), %d unsaved check-ins from an earlier run", out.Event.ID, out.Event.Title, out.Unsaved)
		}
	}

	// Initialize Discord bot when a token is set
	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.ApplicationID,
			GuildID:          cfg.GuildID,
			NoticeChannelID:  cfg.NoticeChannel,
			CheckInService:   checkinSvc,
			MessagingService: messagingSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord bot: %v", err)
		}

		if err := bot.Start(); err != nil {
			log.Fatalf("Failed to start Discord bot: %v", err)
		}
	}

	// Initialize the HTTP API when an address is set
	var server *http.Server
	if cfg.HTTPAddr != "" {
		handler, err := api.New(&api.Config{
			CheckInService:   checkinSvc,
			MessagingService: messagingSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create HTTP handler: %v", err)
		}

		server = &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      handler.Routes(),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("HTTP API listening on %s", cfg.HTTPAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server error: %v", err)
				stop()
			}
		}()
	}

	var term *console.Console
	if cfg.Console {
		term, err = console.New(&console.Config{
			CheckInService:   checkinSvc,
			MessagingService: messagingSvc,
			Clock:            clk,
			In:               os.Stdin,
			Out:              os.Stdout,
			ExportDir:        cfg.ExportDir,
			Username:         cfg.Username,
			Password:         cfg.Password,
		})
		if err != nil {
			log.Fatalf("Failed to create console: %v", err)
		}
	}

	go monitoring.NewMonitor(checkinSvc, 30*time.Second).Run(ctx)

	// Fan background submission notices out to every front-end
	noticesDone := make(chan struct{})
	go func() {
		defer close(noticesDone)
		for notice := range checkinSvc.Notices() {
			if term != nil {
				term.PrintNotice(ctx, notice)
			}
			if bot != nil {
				if err := bot.PostNotice(ctx, notice); err != nil {
					log.Printf("Failed to post notice for %s: %v", notice.Identifier, err)
				}
			}
		}
	}()

	if term != nil {
		go func() {
			if err := term.Run(ctx); err != nil {
				log.Printf("Console stopped: %v", err)
			}
			stop()
		}()
	}

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error stopping HTTP server: %v", err)
		}
	}

	if err := checkinSvc.Stop(shutdownCtx); err != nil {
		log.Printf("Error stopping check-in service: %v", err)
	}

	select {
	case <-noticesDone:
	case <-shutdownCtx.Done():
		log.Println("Gave up waiting for pending notices")
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Printf("Error stopping bot: %v", err)
		}
	}

	if _, count, err := checkinSvc.UnsavedCount(shutdownCtx); err == nil && count > 0 {
		log.Printf("%d check-ins are still unsaved, they will be offered again when the event is loaded", count)
	}

	log.Println("Event swipe has been shut down")
}
