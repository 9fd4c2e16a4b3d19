package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/constituent-office/internal/api/http/handlers"
	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Complaints     *handlers.ComplaintsHandler
	Reports        *handlers.ReportsHandler
	TeamChat       *handlers.TeamChatHandler
	Directory      *handlers.DirectoryHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	complaints := app.Group("/complaints", cfg.AuthMiddleware.Handle)
	complaints.Post("", auth.RequireRole(domain.RoleCitizen), cfg.Complaints.Create)
	complaints.Get("", cfg.Complaints.List)
	complaints.Get("/:id", cfg.Complaints.Get)
	complaints.Patch("/:id/status", auth.RequireOffice(), cfg.Complaints.UpdateStatus)
	complaints.Post("/:id/messages", cfg.Complaints.AddMessage)
	complaints.Post("/:id/refine", auth.RequireOffice(), cfg.Complaints.RefineReply)

	reports := app.Group("/reports", cfg.AuthMiddleware.Handle)
	reports.Get("", cfg.Reports.Get)

	team := app.Group("/team", cfg.AuthMiddleware.Handle, auth.RequireOffice())
	team.Get("/channels", cfg.TeamChat.Channels)
	team.Get("/channels/:channel/messages", cfg.TeamChat.History)
	team.Post("/channels/:channel/messages", cfg.TeamChat.Send)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleSupervisor))
	staff.Get("", cfg.Directory.List)
	staff.Post("", cfg.Directory.Create)
	staff.Patch("/:id/scope", cfg.Directory.Rescope)
	staff.Delete("/:id", cfg.Directory.Deactivate)
}
