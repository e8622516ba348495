package main

import (
	"context"
	"errors"
	"os"

	"github.com/obrasync/cashbox/internal/app"
	"github.com/obrasync/cashbox/internal/config"
	"github.com/obrasync/cashbox/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
