package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skabbuzaid/AiBackend/internal/config"
	"github.com/skabbuzaid/AiBackend/internal/container"
	"github.com/skabbuzaid/AiBackend/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		ChatHandler:      c.ChatContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		FlashcardHandler: c.FlashcardContainer.Handler,
		ProgressHandler:  c.ProgressContainer.Handler,
		CompanionHandler: c.CompanionContainer.Handler,
		SessionHandler:   c.SessionHandler,
	})

	srv := &http.Server{
		Addr:         ":" + config.AppConfig.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("forced shutdown: %v", err)
	}
	logrus.Info("server stopped")
}
