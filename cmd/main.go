package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poolbridge/internal/handlers"
	"poolbridge/internal/logger"
	"poolbridge/internal/screenlogic"
	"poolbridge/internal/server"
	"poolbridge/internal/service"

	"github.com/spf13/viper"

	_ "poolbridge/docs"
)

// @title        Pool Bridge API
// @version      1.0
// @description  Web command bridge for ScreenLogic pool/spa gateways.

func main() {
	// load config.yml first so the log level is honored
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log_level"))

	// wire dependencies
	locator := buildLocator()
	dialer := &screenlogic.WSDialer{}
	services := service.NewService(
		locator,
		dialer,
		viper.GetDuration("gateway.command_timeout"),
		viper.GetInt("events.capacity"),
		log,
	)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("gateway.port", 80)
	viper.SetDefault("gateway.discovery_timeout", 5*time.Second)
	viper.SetDefault("gateway.command_timeout", 10*time.Second)
	viper.SetDefault("events.capacity", 100)
	return viper.ReadInConfig()
}

// buildLocator prefers a statically configured gateway address and falls back
// to mDNS discovery when none is set.
func buildLocator() screenlogic.Locator {
	if addr := viper.GetString("gateway.address"); addr != "" {
		return screenlogic.StaticLocator{Addr: screenlogic.Addr{
			IP:   addr,
			Port: viper.GetInt("gateway.port"),
		}}
	}
	return screenlogic.NewMDNSLocator(viper.GetDuration("gateway.discovery_timeout"))
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
