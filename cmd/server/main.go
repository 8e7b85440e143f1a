package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusconnect/backend/internal/bus"
	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/database"
	postgresrepo "github.com/campusconnect/backend/internal/repository/postgres"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/transport/http/handlers"
	"github.com/campusconnect/backend/internal/transport/http/middleware"
	"github.com/campusconnect/backend/internal/transport/ws"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	profileRepo := postgresrepo.NewProfileRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)
	boardRepo := postgresrepo.NewBoardRepo(pool)

	// Change notifications
	events := bus.New()

	// Services
	directoryService := service.NewDirectoryService(profileRepo)
	messageService := service.NewMessageService(messageRepo, profileRepo, events)
	boardService := service.NewBoardService(boardRepo, events)

	// WebSocket hub + bus bridge
	hub := ws.NewHub()
	go hub.Run()

	bridge := ws.NewBridge(hub, events)
	bridge.Start()
	defer bridge.Stop()

	// Handlers
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	messageHandler := handlers.NewMessageHandler(messageService)
	boardHandler := handlers.NewBoardHandler(boardService)

	// Middleware
	auth := middleware.Auth(cfg.JWTSecret)
	limiter := middleware.NewLimiterStore(30, 10, 5*time.Minute)
	defer limiter.Stop()
	limit := middleware.RateLimit(limiter)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	mux.Handle("GET /api/v1/contacts", auth(http.HandlerFunc(directoryHandler.ListContacts)))

	mux.Handle("GET /api/v1/messages", auth(http.HandlerFunc(messageHandler.ListMessages)))
	mux.Handle("GET /api/v1/messages/{contactID}", auth(http.HandlerFunc(messageHandler.Conversation)))
	mux.Handle("POST /api/v1/messages", auth(limit(http.HandlerFunc(messageHandler.Send))))

	mux.Handle("GET /api/v1/board", auth(http.HandlerFunc(boardHandler.Feed)))
	mux.Handle("POST /api/v1/board", auth(limit(http.HandlerFunc(boardHandler.Post))))

	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Public board engine: subscription first, then initial snapshot.
	if err := boardService.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer boardService.Stop()

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{Addr: addr, Handler: middleware.CORS(mux)}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
