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

	"github.com/thepKz/gender-care-sub009/internal/cache"
	"github.com/thepKz/gender-care-sub009/internal/config"
	"github.com/thepKz/gender-care-sub009/internal/events"
	"github.com/thepKz/gender-care-sub009/internal/httpserver"
	"github.com/thepKz/gender-care-sub009/internal/logging"
	"github.com/thepKz/gender-care-sub009/internal/metrics"
	loggingmw "github.com/thepKz/gender-care-sub009/internal/middleware/logging"
	"github.com/thepKz/gender-care-sub009/internal/repo"
	"github.com/thepKz/gender-care-sub009/internal/search"
	"github.com/thepKz/gender-care-sub009/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(context.Background(), configuration)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	metrics.Register()

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	var index *search.Index
	if configuration.ES_URL != "" {
		esClient, err := search.NewClient(configuration)
		if err != nil {
			log.Fatalf("es init: %v", err)
		}
		index = search.NewIndex(esClient, configuration.ES_INDEX)
	}

	var promoCache *cache.PromotionCache
	if configuration.REDIS_ADDRESS != "" {
		promoCache = cache.NewPromotionCache(configuration.REDIS_ADDRESS)
	}

	r := repo.New(db)
	jwtSecret := []byte(configuration.JWT_SECRET)

	authSvc := &service.AuthService{Repo: r, JWTSecret: jwtSecret}
	catalogSvc := &service.CatalogService{Repo: r, Producer: asPublisher(producer)}
	if index != nil {
		catalogSvc.Indexer = index
	}
	promoSvc := &service.PromotionService{Repo: r}
	if promoCache != nil {
		promoSvc.Cache = promoCache
	}
	careSvc := &service.CareService{Repo: r}
	orderSvc := &service.OrderService{Repo: r, Promos: promoSvc, Producer: asPublisher(producer)}
	paymentSvc := &service.PaymentService{Repo: r, Producer: asPublisher(producer)}
	reviewSvc := &service.ReviewService{Repo: r}
	appointmentSvc := &service.AppointmentService{Repo: r}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:        &httpserver.AuthHTTP{Svc: authSvc},
		CatalogHandler:     &httpserver.CatalogHTTP{Svc: catalogSvc},
		CareHandler:        &httpserver.CareHTTP{Svc: careSvc},
		PromotionHandler:   &httpserver.PromotionHTTP{Svc: promoSvc},
		OrderHandler:       &httpserver.OrderHTTP{Svc: orderSvc},
		PaymentHandler:     &httpserver.PaymentHTTP{Svc: paymentSvc},
		ReviewHandler:      &httpserver.ReviewHTTP{Svc: reviewSvc},
		AppointmentHandler: &httpserver.AppointmentHTTP{Svc: appointmentSvc},
		JWTSecret:          jwtSecret,
	}
	if index != nil {
		deps.SearchHandler = &httpserver.SearchHTTP{Index: index}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDRESS,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}
	if promoCache != nil {
		if err := promoCache.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// asPublisher avoids handing services a non-nil interface that wraps a nil
// *events.Producer.
func asPublisher(p *events.Producer) service.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
