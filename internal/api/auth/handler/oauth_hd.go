package authHandler

import (
	"GoFinance/internal/api/auth"
	contextPkg "GoFinance/pkg/context"
	"GoFinance/pkg/handlerUtil"
	"GoFinance/pkg/log"
	"encoding/json"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	url, err := h.authService.LoginGoogle()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(url.String(), fiber.StatusTemporaryRedirect)
	}
}

func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	state := ctx.FormValue("state")
	if state != os.Getenv("GOOGLE_STATE") {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Warn("Invalid state parameter")
		return errHandler.Handle(ctx, requestID, auth.ErrInvalidOAuthState, ctx.Path(), "oauth_state")
	}

	code := ctx.FormValue("code")
	if code == "" {
		reason := ctx.FormValue("error_reason")
		if reason == "user_denied" {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"reason":     reason,
				"path":       ctx.Path(),
			}).Info("User denied access")
			return errHandler.HandleUnauthorized(ctx, requestID, "Access denied by user")
		}

		return errHandler.Handle(ctx, requestID, auth.ErrNoAuthorizationCode, ctx.Path(), "oauth_code")
	}

	payload, err := h.googleProvider.GetUserExchangeToken(ctx, code)
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       ctx.Path(),
		}).Error("Failed to exchange authorization code")
		return errHandler.Handle(ctx, requestID, auth.ErrOAuthExchange, ctx.Path(), "exchange_token")
	}

	var userInfo auth.UserGoogle
	if err := json.Unmarshal(payload, &userInfo); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "unmarshal_user_info")
	}

	loginResponse, err := h.authService.RegisterOrLogin(c, userInfo)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_google_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, loginResponse)
	}
}
