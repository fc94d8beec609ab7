package main

import (
	"context"
	"os"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/tasker"

	"go.llib.dev/seqkit/internal/scenario"
)

type Config struct {
	Scenario scenario.Config
	LogLevel string `env:"SEQKIT_LOG_LEVEL" enum:"debug;info;warn;error;" default:"info"`
}

func main() {
	ctx := logging.ContextWith(context.Background(), logger.Field("app", "seqkit"))
	if err := Main(ctx); err != nil {
		logger.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

func Main(ctx context.Context) error {
	var c Config
	if err := env.Load(&c); err != nil {
		return err
	}

	l := &logging.Logger{
		Out:   os.Stdout,
		Level: logging.Level(c.LogLevel),
	}

	return tasker.Main(ctx, func(ctx context.Context) error {
		r, err := scenario.Run(ctx, c.Scenario, l)
		if err != nil {
			return err
		}
		l.Info(ctx, "all scenarios passed",
			logging.Field("backing", r.Backing),
			logging.Field("stack_elapsed", r.Stack.Elapsed.String()),
			logging.Field("queue_elapsed", r.Queue.Elapsed.String()))
		return nil
	})
}
