// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Darkcom18/airlines-agent/internal/ai"
	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/config"
	httptransport "github.com/Darkcom18/airlines-agent/internal/http"
	"github.com/Darkcom18/airlines-agent/internal/infra"
	"github.com/Darkcom18/airlines-agent/internal/modules/ancillary"
	"github.com/Darkcom18/airlines-agent/internal/modules/booking"
	"github.com/Darkcom18/airlines-agent/internal/modules/chat"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/modules/flight"
	"github.com/Darkcom18/airlines-agent/internal/modules/pnr"
	"github.com/Darkcom18/airlines-agent/internal/modules/supervisor"
	"github.com/Darkcom18/airlines-agent/internal/modules/ticketing"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatalf("postgres init: %v", err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	store := conversation.NewStore(redisClient, dbPool, time.Duration(cfg.Redis.SessionTTL)*time.Second)
	registry := capability.Load()

	var gen ai.TextGenerator
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		gen = provider
	} else {
		log.Print("GEMINI_API_KEY not set, chat falls back to canned replies")
	}

	if len(cfg.Vendor.Sources) == 0 {
		log.Fatal("AGENT_VENDOR_SOURCES must name at least one source")
	}
	searchers := make([]flight.Searcher, 0, len(cfg.Vendor.Sources))
	for _, src := range cfg.Vendor.Sources {
		searchers = append(searchers, sftech.NewClient(cfg.Vendor, src))
	}
	// Booking and post-sale operations go through the primary source.
	primary := sftech.NewClient(cfg.Vendor, cfg.Vendor.Sources[0])

	supervisorSvc := supervisor.NewService(store,
		flight.NewService(registry, searchers),
		booking.NewService(registry, primary),
		ticketing.NewService(registry, primary),
		pnr.NewService(registry, primary),
		ancillary.NewService(registry, primary),
		chat.NewService(registry, gen),
	)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Supervisor: supervisorSvc,
		Registry:   registry,
		Store:      store,
		APIKey:     cfg.HTTP.APIKey,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
