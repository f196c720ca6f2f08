package ledgerHandler

import (
	contextPkg "GoFinance/pkg/context"
	"GoFinance/pkg/handlerUtil"
	jwtPkg "GoFinance/pkg/jwt"
	"GoFinance/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *LedgerHandler) HandleExportStatement(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	// Export builds a workbook and uploads it, so it gets a longer timeout
	// than the read endpoints.
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing export statement request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	export, err := h.ledgerService.ExportStatement(c, userData.ID, windowFromQuery(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_statement")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, export)
	}
}
