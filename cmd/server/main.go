package main

import (
	"flag"

	_ "github.com/joho/godotenv/autoload"

	"traites/internal/app"
	"traites/internal/config"
)

// @title           Traites API
// @version         1.0
// @description     Installment plans and printable traites (bills of exchange) for client receivables and supplier payables.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the yaml config")
	flag.Parse()
	app.Run(*configPath)
}
