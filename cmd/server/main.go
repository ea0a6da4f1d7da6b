package main

import (
	"context"
	"log"

	"github.com/lynlab/accounts/internal/server"
	"github.com/lynlab/accounts/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
