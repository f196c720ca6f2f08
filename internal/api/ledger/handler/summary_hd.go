package ledgerHandler

import (
	"GoFinance/pkg/aggregate"
	contextPkg "GoFinance/pkg/context"
	"GoFinance/pkg/handlerUtil"
	jwtPkg "GoFinance/pkg/jwt"
	"GoFinance/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// windowFromQuery reads the month and year query parameters, defaulting to
// the current calendar month when either is missing.
func windowFromQuery(ctx *fiber.Ctx) aggregate.MonthWindow {
	now := aggregate.WindowOf(time.Now())
	month := ctx.QueryInt("month", int(now.Month))
	year := ctx.QueryInt("year", now.Year)
	return aggregate.MonthWindow{Month: time.Month(month), Year: year}
}

func (h *LedgerHandler) HandleCategorySummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing category summary request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	summary, err := h.ledgerService.CategorySummary(c, userData.ID, windowFromQuery(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "category_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}
