package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/saiventuri/EmployeeManagement/internal/auth/errors"
	"github.com/saiventuri/EmployeeManagement/internal/token"
	"github.com/saiventuri/EmployeeManagement/internal/user"
)

type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	users  user.Service
	tokens *token.Issuer
	logger *zap.Logger
}

func NewService(users user.Service, tokens *token.Issuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, tokens: tokens, logger: l}
}

// Login authenticates the username/password pair and, on success,
// issues a signed credential bound to the username. Failures collapse
// into one invalid-credentials error so callers cannot distinguish an
// unknown user from a wrong password.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.users.LoadIdentity(ctx, username)
	if err != nil {
		s.logger.Warn("login identity lookup failed", zap.String("user_name", username))
		return "", autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("user_name", username))
		return "", autherrors.ErrInvalidCredentials
	}

	signed, err := s.tokens.Generate(identity.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.String("user_name", username), zap.Error(err))
		return "", err
	}

	s.logger.Info("login success", zap.String("user_name", username))
	return signed, nil
}
