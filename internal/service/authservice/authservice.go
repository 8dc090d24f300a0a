package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(user.ID, user.IsAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}
