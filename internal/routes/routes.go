package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arcuspath/backend/internal/handlers"
	"github.com/arcuspath/backend/internal/middleware"
	"github.com/arcuspath/backend/model"
)

// Deps bundles the handler groups the router wires up.
type Deps struct {
	Search       *handlers.SearchHandlers
	Applications *handlers.ApplicationHandlers
	Moderation   *handlers.ModerationHandlers
	Vouches      *handlers.VouchHandlers
	Referrals    *handlers.ReferralHandlers
	Auth         *handlers.AuthHandlers
}

func Register(app *fiber.App, d Deps) {
	app.Get("/whoami", handlers.WhoAmI())

	api := app.Group("/api")

	api.Post("/auth/login", d.Auth.Login)

	// public directory search
	providers := api.Group("/providers")
	providers.Get("/", d.Search.SearchProviders)
	providers.Get("/browse", d.Search.BrowseByBadges)
	providers.Get("/:id", d.Search.GetProvider)

	// community vouches
	providers.Post("/:id/vouches", middleware.RequireAuth(), d.Vouches.CreateVouch)
	providers.Delete("/:id/vouches", middleware.RequireAuth(), d.Vouches.RetractVouch)

	// provider onboarding
	apps := api.Group("/applications", middleware.RequireAuth())
	apps.Post("/", d.Applications.CreateApplication)
	apps.Get("/", d.Applications.ListOwnApplications)
	apps.Patch("/:id", d.Applications.UpdateApplication)
	apps.Post("/:id/submit", d.Applications.SubmitApplication)

	// referral program
	refs := api.Group("/referrals", middleware.RequireAuth())
	refs.Post("/", d.Referrals.GetReferralCode)
	refs.Post("/apply", d.Referrals.ApplyReferral)
	refs.Get("/stats", d.Referrals.ReferralStats)

	// moderation console
	admin := api.Group("/admin", middleware.RequireRole(string(model.RoleAdmin)))
	admin.Get("/queue", d.Moderation.Queue)
	admin.Post("/providers/:id/approve", d.Moderation.Approve())
	admin.Post("/providers/:id/activate", d.Moderation.Activate())
	admin.Post("/providers/:id/suspend", d.Moderation.Suspend())
	admin.Post("/providers/:id/reinstate", d.Moderation.Reinstate())
	admin.Post("/providers/:id/badges", d.Moderation.AwardBadge)
	admin.Delete("/providers/:id/badges/:badge", d.Moderation.RevokeBadge)
	admin.Post("/providers/:id/verification", d.Moderation.SetVerification)
}
