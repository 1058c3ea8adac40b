package user

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	SaveUser(ctx context.Context, u *User) error
	FindByName(ctx context.Context, name string) (*User, error)
	FindRoleByName(ctx context.Context, name string) (*Role, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// SaveUser persists the user and its resolved role set in one
// transaction: new roles first, then the user, then the join rows.
// Roles that already carry an id are referenced, not re-inserted.
func (r *repository) SaveUser(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range u.Roles {
			if u.Roles[i].ID != 0 {
				continue
			}
			if err := tx.Create(&u.Roles[i]).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(u).Error; err != nil {
			return err
		}

		for _, role := range u.Roles {
			join := UserRole{UserID: u.ID, RoleID: role.ID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *repository) FindByName(ctx context.Context, name string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "name = ?", name).Error; err != nil {
		return nil, err
	}

	var roles []Role
	err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ur ON ur.role_id = roles.id").
		Where("ur.user_id = ?", u.ID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	u.Roles = roles

	return &u, nil
}

func (r *repository) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	if err := r.db.WithContext(ctx).First(&role, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
