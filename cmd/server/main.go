package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"quizzly-backend/internal/config"
	"quizzly-backend/internal/container"
	"quizzly-backend/internal/router"
)

func main() {
	_ = godotenv.Load()
	config.InitLogger()

	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize application")
	}

	r := router.New(router.RouterConfig{
		QuizHandler: c.QuizContainer.Handler,
	})

	addr := ":" + c.Settings.ServerPort
	logrus.WithField("addr", addr).Info("server starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
