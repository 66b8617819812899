// Package main is the entry point for the print-orders application.
//
// @title           Print Orders API
// @version         1.0.0
// @description     Prints Correios shipping labels and content declarations for store orders.
//
//	Labels are laid out on paper sheets according to a configurable layout;
//	content declarations list each order's items, quantities and weights.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/print-orders
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Print
// @tag.description Label sheets and content declarations
//
// @tag.name        Layouts
// @tag.description Available paper layouts
//
// @tag.name        Settings
// @tag.description Sender block and stored print options
//
// @tag.name        Logs
// @tag.description Print and settings audit log
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/print-orders/docs" // swagger docs

	"github.com/guttosm/print-orders/config"
	"github.com/guttosm/print-orders/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
