package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"portal-auth-service/internal/config"
	"portal-auth-service/internal/handler"
	"portal-auth-service/internal/migrations"
	"portal-auth-service/internal/repository"
	"portal-auth-service/internal/router"
	"portal-auth-service/internal/session"
	"portal-auth-service/internal/usecase"
	"portal-auth-service/pkg/jwtutil"
)

// NewServer builds the HTTP server: connects the database (fatal after the
// retry budget is exhausted), applies migrations, and wires the auth stack.
func NewServer(cfg config.AppConfig) *http.Server {
	ctx := context.Background()

	db, err := config.ConnectDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := runMigrations(ctx, cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	tokens, err := jwtutil.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("failed to init token issuer: %v", err)
	}

	userRepo := repository.NewPostgresUserRepository(db)
	userUC := usecase.NewUserUsecase(userRepo)
	cookies := session.NewCookieManager(tokens.TTL(), cfg.CookieSecure)
	authHandler := handler.NewAuthHandler(userUC, tokens, cookies)

	r := chi.NewRouter()
	r = router.SetupRoutes(r, authHandler, rdb, cfg.ClientOrigin).(*chi.Mux)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}

func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
