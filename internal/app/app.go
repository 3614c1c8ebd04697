package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/internal/config"
	"storefront-service/internal/delivery/grpc/handler"
	"storefront-service/internal/delivery/grpc/proto"
	"storefront-service/internal/domain/entities"
	"storefront-service/internal/infrastructure/logger"
	"storefront-service/internal/infrastructure/mongodb"
	"storefront-service/internal/infrastructure/nats"
	"storefront-service/internal/usecase"

	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

// Run loads the configuration and runs the service until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return New(cfg).Run()
}

func (a *App) Run() error {
	a.logger.Info("Starting storefront-service")
	defer a.logger.Sync()

	client, err := a.connectMongo()
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			a.logger.Warn("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	db := client.Database(a.cfg.Mongo.DB)

	orderRepo, err := mongodb.NewOrderRepositoryMongo(db, a.logger)
	if err != nil {
		a.logger.Error("Failed to init order repository", "error", err)
		return fmt.Errorf("failed to init order repository: %w", err)
	}

	publisher := a.initNATS()
	defer publisher.Close()

	catalogUseCase := usecase.NewCatalogUseCase(mongodb.NewCatalogRepositoryMongo(db, a.logger), a.logger)

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	catalogUseCase.Load(loadCtx)
	cancel()

	chatUseCase := usecase.NewChatUseCase(catalogUseCase, a.cfg.Chat.ReplyDelay)

	sessionUseCase := usecase.NewSessionUseCase(
		catalogUseCase,
		chatUseCase,
		orderRepo,
		publisher,
		usecase.GateConfig{
			Enabled:    a.cfg.Gate.Enabled,
			Passphrase: a.cfg.Gate.Passphrase,
			CheckDelay: a.cfg.Gate.CheckDelay,
		},
		a.logger,
	)

	grpcServer, lis, err := a.initGRPCServer(sessionUseCase)
	if err != nil {
		return err
	}

	return a.runServerWithGracefulShutdown(grpcServer, lis)
}

func (a *App) connectMongo() (*mongo.Client, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	client, err := mongodb.Connect(a.cfg.Mongo.URI)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return client, nil
}

func (a *App) initNATS() usecase.EventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS URL not set, event publishing disabled")
		return &noopPublisher{}
	}

	publisher, err := connectToNATSWithRetry(a.cfg.NATS.URL, a.logger, 3, 2*time.Second)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return &noopPublisher{}
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) initGRPCServer(sessionUseCase *usecase.SessionUseCase) (*grpc.Server, net.Listener, error) {
	storefrontHandler := handler.NewStorefrontHandler(sessionUseCase)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(a.loggingInterceptor()),
	)

	proto.RegisterStorefrontServiceServer(grpcServer, storefrontHandler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+a.cfg.GRPC.Port)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on port %s: %w", a.cfg.GRPC.Port, err)
	}

	return grpcServer, lis, nil
}

func (a *App) runServerWithGracefulShutdown(grpcServer *grpc.Server, lis net.Listener) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting gRPC server", "port", a.cfg.GRPC.Port)
		serverErrors <- grpcServer.Serve(lis)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		shutdownComplete := make(chan struct{})

		go func() {
			a.logger.Info("Stopping gRPC server gracefully")
			grpcServer.GracefulStop()
			close(shutdownComplete)
		}()

		select {
		case <-shutdownComplete:
			a.logger.Info("Graceful shutdown completed")
		case <-ctx.Done():
			a.logger.Warn("Graceful shutdown timeout, forcing stop")
			grpcServer.Stop()
		}

		return nil
	}
}

func connectToNATSWithRetry(url string, logger *logger.Logger, maxRetries int, delay time.Duration) (usecase.EventPublisher, error) {
	for i := 0; i < maxRetries; i++ {
		publisher, err := nats.NewNatsPublisher(url, logger)
		if err == nil {
			return publisher, nil
		}

		logger.Warn("Failed to connect to NATS, retrying...",
			"attempt", i+1,
			"max_retries", maxRetries,
			"error", err)

		if i < maxRetries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts", maxRetries)
}

type noopPublisher struct{}

func (n *noopPublisher) PublishOrderPlaced(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopPublisher) Close() {
}

func (a *App) loggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		a.logger.Info("gRPC method called", "method", info.FullMethod)
		resp, err := handler(ctx, req)
		if err != nil {
			a.logger.Error("gRPC method failed", "method", info.FullMethod, "error", err)
		} else {
			a.logger.Info("gRPC method completed", "method", info.FullMethod)
		}
		return resp, err
	}
}
