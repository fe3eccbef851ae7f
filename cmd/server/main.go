package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/blog/application"
	"github.com/karasuno/wpfront/blog/persistence"
	"github.com/karasuno/wpfront/internal/config"
	"github.com/karasuno/wpfront/internal/middleware"
	"github.com/karasuno/wpfront/internal/rest"
	"github.com/karasuno/wpfront/shared/cache"
	"github.com/karasuno/wpfront/shared/httpclient"
	"github.com/karasuno/wpfront/shared/wordpress"
	webhookhttp "github.com/karasuno/wpfront/webhook/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	store := cache.NewStore(context.Background(), cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)

	client := httpclient.New(cfg.WordPress.Timeout)
	gateway := wordpress.NewGateway(client, cfg.WordPress.BaseURL)
	blogService := application.NewBlogService(gateway)
	reader := persistence.NewCachedReader(blogService, blogService, store, cfg.Cache.TTL)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))

	rest.NewAPI(reader, reader).RegisterRoutes(r)

	policy := webhookhttp.Policy{
		AlwaysPaths:    cfg.Revalidate.AlwaysPaths,
		AlwaysTags:     cfg.Revalidate.AlwaysTags,
		PostPathPrefix: cfg.Revalidate.PostPathPrefix,
	}
	webhookhttp.NewWebhookHandler(cfg.Revalidate.Secret, policy, cache.NewInvalidator(store)).RegisterRoutes(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
