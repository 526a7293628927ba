package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/invoice-dashboard/internal/domain"
	"github.com/fsdevblog/invoice-dashboard/internal/repository/repoargs"
	"github.com/fsdevblog/invoice-dashboard/internal/service/tokens"
	"github.com/fsdevblog/invoice-dashboard/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type AuthService struct {
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
	l              *logrus.Entry
}

func NewAuthService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher, l *logrus.Logger) (*AuthService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	return &AuthService{
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
		l:              l.WithField("component", "auth_service"),
	}, nil
}

type LoginArgs struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Authenticate проверяет пару email/пароль.
//
// Любая причина отказа (некорректный формат, неизвестный email, неверный пароль) возвращается одной и той же
// ошибкой domain.ErrCredentialsInvalid. Сбой хранилища при поиске юзера возвращается как domain.ErrSystem.
// При успехе возвращает юзера без хеша пароля.
func (s *AuthService) Authenticate(ctx context.Context, args LoginArgs) (*domain.User, error) {
	if err := formValidator.Struct(args); err != nil {
		var valErrs validator.ValidationErrors
		if !errors.As(err, &valErrs) {
			return nil, fmt.Errorf("authenticate: %w: %s", domain.ErrSystem, err.Error())
		}
		return nil, domain.ErrCredentialsInvalid
	}

	user, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			s.l.Debug("invalid credentials")
			return nil, domain.ErrCredentialsInvalid
		}
		s.l.WithError(findErr).Error("failed to fetch user")
		return nil, fmt.Errorf("authenticate: %w: %s", domain.ErrSystem, findErr.Error())
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		s.l.Debug("invalid credentials")
		return nil, domain.ErrCredentialsInvalid
	}
	return user.Public(), nil
}

// Login аутентифицирует юзера и выпускает jwt токен сессии. Возвращает 3 значения: юзер, токен и ошибку.
func (s *AuthService) Login(ctx context.Context, args LoginArgs) (*domain.User, string, error) {
	user, err := s.Authenticate(ctx, args)
	if err != nil {
		return nil, "", err
	}
	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Email, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w: %s", domain.ErrSystem, tokenErr.Error())
	}
	return user, token, nil
}
