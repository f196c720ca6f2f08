package authService

import (
	"GoFinance/internal/api/auth"
	"GoFinance/internal/entity"
	contextPkg "GoFinance/pkg/context"
	jwtPkg "GoFinance/pkg/jwt"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = 24 * time.Hour

// LoginGoogle builds the consent URL the client is redirected to.
func (s *authService) LoginGoogle() (*url.URL, error) {
	authURL := s.googleProvider.GetConfig().AuthCodeURL(os.Getenv("GOOGLE_STATE"))

	parsed, err := url.Parse(authURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to parse Google auth URL")
		return nil, err
	}

	return parsed, nil
}

// RegisterOrLogin upserts the Google identity and issues an access token.
// First sign-in and returning sign-in follow the same path; the upsert keeps
// name, email and photo current with the provider.
func (s *authService) RegisterOrLogin(ctx context.Context, userInfo auth.UserGoogle) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.LoginResponse{}, err
	}

	user := entity.User{
		ID:       userInfo.ID,
		Name:     userInfo.Name,
		Email:    userInfo.Email,
		PhotoURL: userInfo.Picture,
	}

	if err := repo.Users.Upsert(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upsert user")
		return auth.LoginResponse{}, auth.ErrCreateUser
	}

	accessToken, expiresAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"photo": user.PhotoURL,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User: auth.UserResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			PhotoURL: user.PhotoURL,
		},
	}, nil
}
