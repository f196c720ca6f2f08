package auth

import "GoFinance/pkg/response"

var (
	ErrUserNotFound        = response.NewError(404, "user not found")
	ErrInvalidOAuthState   = response.NewError(401, "invalid oauth state")
	ErrNoAuthorizationCode = response.NewError(400, "no authorization code provided")
	ErrOAuthExchange       = response.NewError(502, "failed to authenticate with google")
	ErrCreateUser          = response.NewError(500, "failed to create user")
)
