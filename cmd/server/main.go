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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/VanaBlak/vana-boutique-main/internal/config"
	"github.com/VanaBlak/vana-boutique-main/internal/es"
	"github.com/VanaBlak/vana-boutique-main/internal/events"
	"github.com/VanaBlak/vana-boutique-main/internal/httpserver"
	"github.com/VanaBlak/vana-boutique-main/internal/logging"
	loggingmw "github.com/VanaBlak/vana-boutique-main/internal/middleware/logging"
	"github.com/VanaBlak/vana-boutique-main/internal/repo"
	"github.com/VanaBlak/vana-boutique-main/internal/service"
	"github.com/VanaBlak/vana-boutique-main/internal/tokens"
	"github.com/VanaBlak/vana-boutique-main/pkg/db"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	gdb, err := db.Open(ctx, configuration.DSN())
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("database migrate error: %v", err)
	}

	var prod *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	store := repo.New(gdb)

	identitySvc := &service.IdentityService{Repo: store}
	cartSvc := &service.CartService{Repo: store}
	checkoutSvc := &service.CheckoutService{Repo: store}
	catalogSvc := &service.CatalogService{Repo: store}

	deps := httpserver.Deps{
		AuthHandler:     &httpserver.AuthHandler{Identity: identitySvc, Cart: cartSvc, Producer: prod, JWTSecret: jwtSecret},
		CartHandler:     &httpserver.CartHandler{Svc: cartSvc, Producer: prod},
		CheckoutHandler: &httpserver.CheckoutHandler{Svc: checkoutSvc},
		CatalogHandler:  &httpserver.CatalogHandler{Svc: catalogSvc, Producer: prod, Index: "products"},
		TokenMW:         &tokens.Middleware{Secret: jwtSecret},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		deps.CatalogHandler.ES = esClient
		deps.SearchHandler = &httpserver.SearchHandler{ES: esClient, Index: "products"}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
