package authService

import (
	"GoFinance/internal/api/auth"
	authRepository "GoFinance/internal/api/auth/repository"
	"GoFinance/pkg/google"
	"net/url"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AuthService interface {
	LoginGoogle() (*url.URL, error)
	RegisterOrLogin(ctx context.Context, userInfo auth.UserGoogle) (auth.LoginResponse, error)
	GetProfile(ctx context.Context, id string) (auth.UserResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
}

func New(log *logrus.Logger, ar authRepository.Repository, googleProvider google.ItfGoogle) AuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		googleProvider: googleProvider,
	}
}
