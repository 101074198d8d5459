package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-auth-service/internal/config"
	"portal-auth-service/internal/server"
)

func main() {
	cfg := config.Load()

	srv := server.NewServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Auth service starting on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Println("Shutting down auth service...")
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Auth shutdown failed: %v", err)
		}
	case err := <-errCh:
		log.Fatal(err)
	}
}
