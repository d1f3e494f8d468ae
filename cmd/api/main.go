package main

import (
	"os"
	"strings"

	_ "sacola_api/docs"
	"sacola_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           API de Sacola
// @version         1.0
// @description     Sacola de compras: itens, cupons, endereço, frete e checkout.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3002

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	routes.Run()
}

func newLogger() *zap.Logger {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	build := zap.NewProduction
	if env == "dev" || env == "development" || env == "local" {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
