package main

import (
	"log"
	"math/rand"
	"os"

	"github.com/quantfold/futuresim/params"
	"github.com/quantfold/futuresim/pkg/cli"
	"github.com/quantfold/futuresim/pkg/order"
	"github.com/quantfold/futuresim/pkg/util"
)

func main() {
	cfg := params.LoadFromEnv("") // "" means load .env from current directory

	logger, err := util.NewLoggerWithFile(cfg.Logging.Path)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	sim := order.NewDefault()
	if cfg.Random.Seeded {
		sim = order.New(rand.NewSource(cfg.Random.Seed), util.RealClock{})
	}

	app := &cli.App{
		Logger: logger.Sugar(),
		Sim:    sim,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	code := app.RunLimit(os.Args[1:])
	logger.Sync() // os.Exit skips defers
	os.Exit(code)
}
