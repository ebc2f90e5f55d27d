package main

import (
	"context"
	"log"
	"os"

	"github.com/avasin/brewmart/internal/buildinfo"
	"github.com/avasin/brewmart/internal/cli"
	"github.com/avasin/brewmart/internal/config"
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
