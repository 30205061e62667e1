package router

import (
	"github.com/gofiber/fiber/v2"

	"registration-web/internal/config"
	"registration-web/internal/handler"
	"registration-web/internal/middleware"
	"registration-web/internal/service"
)

func SetupAPIRoutes(router fiber.Router, cfg *config.Config) {
	// Initialize services
	tabularService := service.NewTabularService()
	registerService := service.NewRegisterService(tabularService)
	dedupeService := service.NewDedupeService(tabularService)
	rosterService := service.NewRosterService(tabularService, cfg)
	exchangeService := service.NewExchangeService(cfg)

	// Initialize handlers
	registerHandler := handler.NewRegisterHandler(registerService, cfg)
	dedupeHandler := handler.NewDedupeHandler(dedupeService, cfg)
	rosterHandler := handler.NewRosterHandler(rosterService, cfg)
	exchangeHandler := handler.NewExchangeHandler(exchangeService)

	// Protected routes
	protected := router.Group("", middleware.APIKeyMiddleware(cfg))

	// Registration intake routes
	registrations := protected.Group("/registrations")
	registrations.Post("/import", registerHandler.ImportRegistrations)
	registrations.Get("/template", registerHandler.DownloadTemplate)
	registrations.Get("/export/:filename", registerHandler.DownloadExport)

	// Account dedupe routes
	accounts := protected.Group("/accounts")
	accounts.Post("/dedupe", dedupeHandler.DedupeAccounts)
	accounts.Get("/dedupe/template", dedupeHandler.DownloadTemplate)

	// Roster routes
	rosters := protected.Group("/rosters")
	rosters.Post("/import", rosterHandler.ImportRoster)
	rosters.Post("/enrich", rosterHandler.EnrichRoster)

	// Exchange rate routes
	exchange := protected.Group("/exchange")
	exchange.Get("/latest", exchangeHandler.Latest)
	exchange.Get("/historical", exchangeHandler.Historical)
}
