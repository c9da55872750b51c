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

	gql "github.com/graphql-go/graphql"
	"github.com/joho/godotenv"

	"github.com/zhouzirui/people/backend/internal/config"
	"github.com/zhouzirui/people/backend/internal/graph"
	"github.com/zhouzirui/people/backend/internal/handler"
	"github.com/zhouzirui/people/backend/internal/model/person"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := loadStore(cfg.Store)
	if err != nil {
		log.Fatalf("failed to load people: %v", err)
	}
	log.Printf("people store ready with %d record(s)", store.Len())

	opts := handler.Options{AllowedOrigins: cfg.Server.AllowedOrigins}
	if cfg.GraphQL.Enabled {
		var schema gql.Schema
		schema, err = graph.NewSchema(store)
		if err != nil {
			log.Fatalf("failed to build graphql schema: %v", err)
		}
		opts.Schema = &schema
		log.Println("GraphQL endpoint enabled at /api/graphql")
	} else {
		log.Println("GraphQL endpoint disabled by configuration")
	}

	router := handler.NewRouter(store, opts)

	startServer(ctx, cfg.Server, router)
}

// loadStore 使用 PEOPLE_FILE 或内置数据构建只读存储。
func loadStore(cfg config.StoreConfig) (*person.MemoryStore, error) {
	store, err := person.Open(cfg.PeopleFile)
	if err != nil {
		return nil, err
	}
	if cfg.PeopleFile != "" {
		log.Printf("loaded people from %s", cfg.PeopleFile)
	}
	return store, nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("people backend listening on %s", addr)
	if err := runServer(ctx, srv, serverCfg.ShutdownTimeout); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
