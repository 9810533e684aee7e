package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/doculuna/wallet/docs"
	"github.com/doculuna/wallet/internal/config"
	dialoghandlers "github.com/doculuna/wallet/internal/handlers/dialog"
	eventshandlers "github.com/doculuna/wallet/internal/handlers/events"
	operatorhandlers "github.com/doculuna/wallet/internal/handlers/operator"
	wallethandlers "github.com/doculuna/wallet/internal/handlers/wallet"
	"github.com/doculuna/wallet/internal/service"
	"github.com/doculuna/wallet/pkg/auth"
)

type WalletHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetReferralStats(w http.ResponseWriter, r *http.Request)
	GetWithdrawalHistory(w http.ResponseWriter, r *http.Request)
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
}

type DialogHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Input(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type EventsHandler interface {
	PurchaseConfirmed(w http.ResponseWriter, r *http.Request)
	RegisterReferral(w http.ResponseWriter, r *http.Request)
}

type OperatorHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Reverse(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler   WalletHandler
	DialogHandler   DialogHandler
	EventsHandler   EventsHandler
	OperatorHandler OperatorHandler

	authMiddleware *auth.Middleware
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(jwtService, cfg.Operators)

	return &Handlers{
		WalletHandler:   wallethandlers.New(s.QueryService),
		DialogHandler:   dialoghandlers.New(s.WithdrawalService),
		EventsHandler:   eventshandlers.New(s.ReferralService),
		OperatorHandler: operatorhandlers.New(s.ApprovalService, jwtService, &auth.HashService{}, authMiddleware, cfg.OperatorPassHash),
		authMiddleware:  authMiddleware,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Post("/purchase", h.EventsHandler.PurchaseConfirmed)
		})
		r.Post("/referrals", h.EventsHandler.RegisterReferral)

		r.Route("/wallet/{accountID}", func(r chi.Router) {
			r.Get("/summary", h.WalletHandler.GetSummary)
			r.Get("/referrals", h.WalletHandler.GetReferralStats)
			r.Get("/withdrawals", h.WalletHandler.GetWithdrawalHistory)
			r.Route("/withdraw", func(r chi.Router) {
				r.Post("/start", h.DialogHandler.Start)
				r.Post("/input", h.DialogHandler.Input)
				r.Post("/cancel", h.DialogHandler.Cancel)
			})
		})
		r.Get("/leaderboard", h.WalletHandler.GetLeaderboard)

		r.Route("/operator", func(r chi.Router) {
			r.Post("/login", h.OperatorHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(h.authMiddleware.Handler)
				r.Get("/withdrawals", h.OperatorHandler.ListPending)
				r.Post("/withdrawals/{requestID}/approve", h.OperatorHandler.Approve)
				r.Post("/withdrawals/{requestID}/reject", h.OperatorHandler.Reject)
				r.Post("/transactions/{transactionID}/reverse", h.OperatorHandler.Reverse)
			})
		})
	})

	return r
}
