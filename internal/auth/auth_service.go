package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TokenType = "Bearer"
	issuer    = "leave-tracker"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, secret string, tokenTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	account, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("find account failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.String("username", req.Username))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := IssueToken(s.secret, account.Username, s.now(), expiresAt)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt.UTC(),
		Username:    account.Username,
	}, nil
}

// IssueToken signs an HS256 token whose subject is the username.
func IssueToken(secret []byte, username string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the username.
func ParseToken(secret []byte, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherrors.ErrTokenExpired
		}
		return "", autherrors.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", autherrors.ErrInvalidToken
	}
	return claims.Subject, nil
}
