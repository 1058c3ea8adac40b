package user

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saiventuri/EmployeeManagement/internal/domain"
	usererrors "github.com/saiventuri/EmployeeManagement/internal/user/errors"
)

type Service interface {
	SaveUser(ctx context.Context, u User) (uint, error)
	FindByName(ctx context.Context, name string) (*User, error)
	LoadIdentity(ctx context.Context, username string) (domain.Identity, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

// SaveUser stores a new user. Each incoming role is coalesced against
// the store by name: a match substitutes the existing role record, so
// its identity is preserved; anything else is inserted as new. The
// password is bcrypt-hashed before it ever reaches the store.
func (s *service) SaveUser(ctx context.Context, u User) (uint, error) {
	s.logger.Debug("save user requested", zap.String("user_name", u.Name))

	resolved := make([]Role, 0, len(u.Roles))
	seen := make(map[string]bool, len(u.Roles))
	for _, role := range u.Roles {
		if seen[role.Name] {
			continue
		}
		seen[role.Name] = true

		inDB, err := s.repo.FindRoleByName(ctx, role.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("role lookup failed", zap.String("role_name", role.Name), zap.Error(err))
			return 0, usererrors.ErrUserSaveFailed
		}
		if inDB != nil {
			resolved = append(resolved, *inDB)
			continue
		}
		resolved = append(resolved, Role{Name: role.Name})
	}
	u.Roles = resolved

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return 0, usererrors.ErrUserSaveFailed
	}
	u.Password = string(hashed)

	if err := s.repo.SaveUser(ctx, &u); err != nil {
		s.logger.Error("save user persist failed", zap.String("user_name", u.Name), zap.Error(err))
		return 0, usererrors.ErrUserSaveFailed
	}

	s.logger.Info("save user success", zap.Uint("user_id", u.ID))
	return u.ID, nil
}

func (s *service) FindByName(ctx context.Context, name string) (*User, error) {
	return s.repo.FindByName(ctx, name)
}

// LoadIdentity resolves a user name into the identity-and-authorities
// view consumed by the authentication gate and the login flow.
func (s *service) LoadIdentity(ctx context.Context, username string) (domain.Identity, error) {
	u, err := s.repo.FindByName(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Identity{}, usererrors.ErrUserNotFound
	}
	if err != nil {
		s.logger.Error("load identity failed", zap.String("user_name", username), zap.Error(err))
		return domain.Identity{}, err
	}

	authorities := make([]string, len(u.Roles))
	for i, role := range u.Roles {
		authorities[i] = role.Name
	}

	return domain.Identity{
		Username:     u.Name,
		PasswordHash: u.Password,
		Authorities:  authorities,
	}, nil
}
