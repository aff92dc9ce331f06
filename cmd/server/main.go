package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"calendar-store/internal/api"
	"calendar-store/internal/auth"
	"calendar-store/internal/config"
	"calendar-store/internal/grpcweb"
	"calendar-store/internal/handler"
	"calendar-store/internal/middleware"
	"calendar-store/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	logger = logger.Level(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// memory only, everything is gone on shutdown
	// tokens and the store expire things on one clock
	clock := time.Now
	st := store.New(store.WithLogger(logger), store.WithHashCost(cfg.BcryptCost), store.WithClock(clock))
	iss := auth.NewIssuer(cfg.JWTSecret, clock)
	if cfg.SeedDemo {
		if err := st.Seed(clock().In(cfg.Location)); err != nil {
			logger.Fatal().Err(err).Msg("seed")
		}
	}
	h := handler.New(st, iss, cfg.Location)

	// grpc server
	rl := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(api.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.Logger(logger),
			middleware.RateLimit(rl),
			middleware.Auth(iss, st.PersonExists),
		),
	)
	api.RegisterCalendarServiceServer(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Fatal().Err(err).Msg("listen")
	}
	go func() {
		logger.Info().Str("port", cfg.GRPCPort).Msg("grpc listening")
		if err := srv.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc")
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := grpcweb.New("localhost:"+cfg.GRPCPort, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("bridge")
	}
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           bridge.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("port", cfg.WebPort).Msg("grpc-web listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	srv.GracefulStop()
}
