package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/application/auth"
	"github.com/jhoicas/afiliaciones-api/internal/application/catalog"
	"github.com/jhoicas/afiliaciones-api/internal/application/client"
	"github.com/jhoicas/afiliaciones-api/internal/application/report"
	"github.com/jhoicas/afiliaciones-api/internal/application/unsubscription"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AffiliationUC    *affiliation.AffiliationUseCase
	BulkImporter     *affiliation.BulkImporter
	UnsubscriptionUC *unsubscription.UnsubscriptionUseCase
	ClientUC         *client.ClientUseCase
	ListsUC          *catalog.ListsUseCase
	ReportUC         *report.ReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Usuarios (solo admin)
	api.Post("/users", requireAuth, RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Afiliaciones: usuario y oficina llegan en el cuerpo, salvo rollover y carga masiva (token).
	affHandler := NewAffiliationHandler(deps.AffiliationUC, deps.BulkImporter)
	api.Post("/affiliations", affHandler.List)
	api.Put("/affiliations", affHandler.Edit)
	api.Delete("/affiliations", affHandler.Delete)
	api.Put("/affiliations/paid", affHandler.UpdatePaid)
	api.Get("/affiliations/history/inactive", affHandler.ListInactive)
	api.Post("/affiliations/bulk-upload", requireAuth, affHandler.BulkUpload)
	api.Post("/clients-and-affiliations", affHandler.Create)
	api.Post("/monthly_affiliations", requireAuth, affHandler.Rollover)

	// Retiros
	unsubHandler := NewUnsubscriptionHandler(deps.UnsubscriptionUC)
	api.Post("/affiliations/unsubscriptions", unsubHandler.Create)
	api.Post("/affiliations/unsubscriptions/create", unsubHandler.Create)
	api.Put("/affiliations/unsubscriptions/update", unsubHandler.Update)

	// Clientes y catálogos
	api.Post("/clients", NewClientHandler(deps.ClientUC).Create)
	api.Get("/lists", NewCatalogHandler(deps.ListsUC).Lists)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/total-earnings", reportHandler.TotalEarnings)
	reports.Get("/user-performance", reportHandler.UserPerformance)
	reports.Get("/monthly-income-trend", reportHandler.MonthlyIncomeTrend)
	reports.Get("/affiliations/pdf", requireAuth, reportHandler.RosterPDF)
}
