package ledgerHandler

import (
	ledgerService "GoFinance/internal/api/ledger/service"
	"GoFinance/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LedgerHandler struct {
	log           *logrus.Logger
	ledgerService ledgerService.ILedgerService
	validator     *validator.Validate
	middleware    middleware.Middleware
}

func New(
	log *logrus.Logger,
	ls ledgerService.ILedgerService,
	validate *validator.Validate,
	middleware middleware.Middleware) *LedgerHandler {
	return &LedgerHandler{
		log:           log,
		ledgerService: ls,
		validator:     validate,
		middleware:    middleware,
	}
}

func (h *LedgerHandler) Start(srv fiber.Router) {
	ledger := srv.Group("/ledger", h.middleware.NewTokenMiddleware)
	ledger.Post("/transactions", h.HandleCreateTransaction)
	ledger.Get("/transactions", h.HandleDashboard)
	ledger.Delete("/transactions/:id", h.HandleDeleteTransaction)
	ledger.Get("/transactions/export", h.HandleExportStatement)
	ledger.Get("/summary/categories", h.HandleCategorySummary)
	ledger.Get("/categories", h.HandleListCategories)
}
