package httpserver

import (
	"net/http"
	"time"

	"family-ledger-go/internal/auth"
	"family-ledger-go/internal/config"
	"family-ledger-go/internal/transport/httpserver/handler"
	authmw "family-ledger-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, tokens *auth.Tokens) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	r.Get("/health", handlers.Health)

	r.Post("/auth/register", handlers.Register)
	r.Post("/auth/login", handlers.Login)

	bearer := authmw.NewBearerAuth(tokens)
	r.Group(func(r chi.Router) {
		r.Use(bearer.Middleware)

		r.Post("/organization", handlers.CreateOrganization)
		r.Post("/organization/join", handlers.JoinOrganization)
		r.Get("/organization/pending-members", handlers.ListPendingMembers)
		r.Post("/organization/approve-member", handlers.ApproveMember)

		r.Get("/admin/members", handlers.ListMembers)
		r.Post("/admin/approve", handlers.AdminApprove)
		r.Post("/admin/regenerate-referral", handlers.RegenerateReferral)

		r.Get("/category", handlers.ListCategories)
		r.Post("/category", handlers.CreateCategory)

		r.Post("/expense", handlers.RecordExpense)
		r.Get("/expense/my", handlers.ListOwnExpenses)

		r.Get("/dashboard/overview", handlers.DashboardOverview)
		r.Get("/dashboard/summary", handlers.DashboardSummary)
		r.Get("/dashboard/comparison", handlers.DashboardComparison)
		r.Get("/dashboard/report", handlers.DashboardReport)

		r.Post("/upload", handlers.Upload)
	})

	return r
}
