package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portaria-api/internal/application/auth"
	"github.com/jhoicas/portaria-api/internal/application/usecase"
	"github.com/jhoicas/portaria-api/internal/application/visit"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *usecase.CompanyUseCase
	VisitorUC *usecase.VisitorUseCase
	RoomUC    *usecase.RoomUseCase
	VisitUC   *visit.VisitUseCase
	BadgePDF  *visit.BadgePDFUseCase
	ReportUC  *usecase.ReportUseCase
	PlanUC    *usecase.PlanUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/admin/login", authHandler.AdminLogin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Perfil de la empresa autenticada
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/profile", companyHandler.Profile)
	protected.Put("/profile", companyHandler.UpdateProfile)

	// Visitors (protegido)
	visitors := protected.Group("/visitors")
	visitorHandler := NewVisitorHandler(deps.VisitorUC)
	visitors.Post("/", visitorHandler.Create)
	visitors.Get("/", visitorHandler.List)
	visitors.Get("/:id", visitorHandler.GetByID)
	visitors.Put("/:id", visitorHandler.Update)
	visitors.Delete("/:id", visitorHandler.Delete)

	// Rooms (protegido)
	rooms := protected.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/", roomHandler.List)
	rooms.Get("/:id", roomHandler.GetByID)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)

	// Visits (protegido). Las rutas fijas van antes de /:id.
	visits := protected.Group("/visits")
	visitHandler := NewVisitHandler(deps.VisitUC, deps.BadgePDF)
	visits.Post("/", visitHandler.Create)
	visits.Get("/", visitHandler.List)
	visits.Get("/active", visitHandler.ListActive)
	visits.Get("/badge-code", visitHandler.SuggestBadgeCode)
	visits.Get("/:id", visitHandler.GetByID)
	visits.Post("/:id/checkout", visitHandler.Checkout)
	visits.Post("/:id/cancel", visitHandler.Cancel)
	visits.Get("/:id/badge.pdf", visitHandler.BadgePDF)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/visits", reportHandler.VisitReport)

	// Plans (protegido)
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC)
	plans.Get("/", planHandler.List)

	// Área admin (protegido + rol admin)
	admin := protected.Group("/admin", RequireAdmin())
	admin.Post("/clients", companyHandler.Create)
	admin.Get("/clients", companyHandler.List)
	admin.Get("/clients/:id", companyHandler.GetByID)
	admin.Put("/clients/:id", companyHandler.Update)
	admin.Delete("/clients/:id", companyHandler.Delete)
	admin.Get("/stats", companyHandler.Stats)
}
