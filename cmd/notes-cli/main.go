package main

import (
	"context"
	"log"
	"os"

	"github.com/gugan-zemuria/notes-app/internal/buildinfo"
	"github.com/gugan-zemuria/notes-app/internal/client/cli"
	"github.com/gugan-zemuria/notes-app/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
