package main

import (
	"fmt"
	"os"

	_ "freight_pricing/docs"
	"freight_pricing/internal/adapter/http/routes"
	"freight_pricing/internal/config"
	"freight_pricing/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Freight Pricing API
// @version         1.0
// @description     Chargeable weight, tariff quotes and the draft / validate / publish pricing configuration store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}
