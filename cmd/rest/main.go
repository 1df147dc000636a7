package main

import (
	"context"
	"log"

	"openai-chatbot-be/internal/bootstrap"
	"openai-chatbot-be/internal/config"
	"openai-chatbot-be/internal/server"
	"openai-chatbot-be/internal/tracer"
	"openai-chatbot-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.MaxOpenConns)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)

	log.Printf("Server is running on http://localhost:%s", cfg.App.Port)
	log.Fatal(srv.Run())
}
