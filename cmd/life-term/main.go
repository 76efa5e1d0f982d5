package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"conway-life/internal/app"
	"conway-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	screen, err := term.NewScreen()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, cfg.NewSession(), cfg.TPS).Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
