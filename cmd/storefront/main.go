package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	authslot "github.com/dwikikusuma/storefront/internal/auth/infra/slot"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartslot "github.com/dwikikusuma/storefront/internal/cart/infra/slot"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/seed"
	catalogslot "github.com/dwikikusuma/storefront/internal/catalog/infra/slot"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderslot "github.com/dwikikusuma/storefront/internal/order/infra/slot"
	"github.com/dwikikusuma/storefront/internal/payment"
	"github.com/dwikikusuma/storefront/internal/rest"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/dwikikusuma/storefront/pkg/slotstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store := mustStore(cfg, log)

	// Catalog
	productRepo := catalogslot.NewProductRepo(store, log)
	catalogSvc := catalogapp.NewService(productRepo)
	seed.Run(ctx, productRepo, cfg.CatalogSeedURL, log)

	// Cart
	cartRepo := cartslot.NewCartRepo(store, log)
	cartSvc, err := cartapp.NewService(ctx, cartRepo)
	if err != nil {
		log.Error("cart init failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Checkout (adapters)
	cartAccess := checkoutadapter.NewCartServiceAccess(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartAccess, catalogReader, 10)

	// Orders
	orderRepo := orderslot.NewOrderRepo(store, log)
	orderSvc := orderapp.NewService(orderRepo, cartSvc)

	// Auth
	userRepo := authslot.NewUserRepo(store, log)
	sessionRepo := authslot.NewSessionRepo(store)
	authSvc := authapp.NewService(userRepo, sessionRepo)

	server := rest.NewServer(rest.Deps{
		Log:      log,
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Orders:   orderSvc,
		Auth:     authSvc,
		Payments: payment.NewClient(cfg.StripeKey),
		Tokens:   rest.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func mustStore(cfg config.Config, log *slog.Logger) slotstore.Store {
	switch cfg.StoreBackend {
	case "redis":
		store, err := slotstore.NewRedis(slotstore.RedisConfig{
			URL:          cfg.RedisURL,
			ReadTimeout:  cfg.RedisReadTimeout,
			WriteTimeout: cfg.RedisWriteTimeout,
			DialTimeout:  cfg.RedisDialTimeout,
		})
		if err != nil {
			log.Error("redis store failed", slog.Any("err", err))
			os.Exit(1)
		}
		return store
	case "file":
		store, err := slotstore.NewFile(cfg.StoreDir)
		if err != nil {
			log.Error("file store failed", slog.Any("err", err))
			os.Exit(1)
		}
		return store
	default:
		return slotstore.NewMemory()
	}
}
