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

	"github.com/go-redis/redis/v8"

	"quickeats/internal/cart"
	"quickeats/internal/config"
	"quickeats/internal/db"
	"quickeats/internal/httpserver"
	"quickeats/internal/order"
	orderrepo "quickeats/internal/repository/order"
	restaurantrepo "quickeats/internal/repository/restaurant"
	voucherrepo "quickeats/internal/repository/voucher"
	catalogsvc "quickeats/internal/service/catalog"
	orderingsvc "quickeats/internal/service/ordering"
	voucherssvc "quickeats/internal/service/vouchers"
	"quickeats/internal/session"
	"quickeats/internal/track"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	rdb := connectRedis(ctx, cfg.RedisAddr, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	restaurantRepo := restaurantrepo.NewPostgres(dbpool, logger)
	voucherRepo := voucherrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	book := order.NewBook()
	if recent, err := orderRepo.ListRecent(ctx, 50); err != nil {
		logger.Printf("load order history: %v", err)
	} else {
		book.Restore(recent)
	}
	sessions := session.NewManager(cfg.SessionTTL)
	carts := cart.NewStore(cfg.DeliveryFeeCents)
	catalogService := catalogsvc.New(restaurantRepo)
	vouchersService := voucherssvc.New(voucherRepo)
	orderingService := orderingsvc.New(book, orderRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Sessions: sessions,
		Carts:    carts,
		Catalog:  catalogService,
		Vouchers: vouchersService,
		Ordering: orderingService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	simCtx, stopSim := context.WithCancel(ctx)
	defer stopSim()
	go track.New(book, rdb, logger, cfg.TrackInterval).Run(simCtx)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	stopSim()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// connectRedis returns nil when Redis is unreachable; the driver position
// mirror is optional.
func connectRedis(ctx context.Context, addr string, logger *log.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Printf("redis unavailable at %s, driver mirror disabled: %v", addr, err)
		rdb.Close()
		return nil
	}
	return rdb
}
