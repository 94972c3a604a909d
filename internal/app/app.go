// Package app собирает приложение: хранилище, кеш, брокер сообщений,
// платёжного провайдера, сервисы и HTTP-сервер с маршрутами.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/cache"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/config"
	applibjwt "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/jwt"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/paymentprovider"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/rabbitmq"
	cartservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/cart"
	classservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/class"
	paymentservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/payment"
	userservice "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/services/user"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/storage/mongodb"
)

// App инкапсулирует HTTP-сервер и внешние соединения приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
	cache  *cache.Cache
	amqp   *amqp.Connection
}

// New создаёт приложение: устанавливает соединения с MongoDB, Redis и
// RabbitMQ, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.MongoConnection)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	amqpConn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, err
	}
	amqpChannel, err := rabbitmq.SetupChannel(amqpConn, []rabbitmq.QueueConfig{
		{QueueName: "payment_completed", RoutingKey: "payment.completed"},
	})
	if err != nil {
		return nil, err
	}

	tokenMaker := applibjwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.Stripe.SecretKey)
	publisher := rabbitmq.NewPublisher(amqpChannel)

	userService := userservice.New(db, logger)
	classService := classservice.New(db, cacheRedis, logger)
	cartService := cartservice.New(db, logger)
	paymentService := paymentservice.New(db, providerClient, publisher, cfg.Stripe.Currency, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, tokenMaker,
		userService, classService, cartService, paymentService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		amqp:   amqpConn,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста или ошибки
// сервера. При отмене контекста выполняется graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.Close(timeoutCtx); cerr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", cerr))
		}
		_ = a.cache.Db.Close()
		_ = a.amqp.Close()
		return err
	}
}
