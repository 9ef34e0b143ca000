package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/dailydiet/internal/server"
	"github.com/dmitrijs2005/dailydiet/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// optional .env; absence is not an error
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
