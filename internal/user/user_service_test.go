package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saiventuri/EmployeeManagement/internal/user"
	usererrors "github.com/saiventuri/EmployeeManagement/internal/user/errors"
)

// fakeUserRepository keeps users and roles in memory with the same
// contract as the GORM repository.
type fakeUserRepository struct {
	users      map[string]*user.User
	roles      map[string]*user.Role
	nextUserID uint
	nextRoleID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:      make(map[string]*user.User),
		roles:      make(map[string]*user.Role),
		nextUserID: 1,
		nextRoleID: 1,
	}
}

func (f *fakeUserRepository) SaveUser(_ context.Context, u *user.User) error {
	for i := range u.Roles {
		if u.Roles[i].ID == 0 {
			u.Roles[i].ID = f.nextRoleID
			f.nextRoleID++
			stored := u.Roles[i]
			f.roles[stored.Name] = &stored
		}
	}
	u.ID = f.nextUserID
	f.nextUserID++
	stored := *u
	f.users[u.Name] = &stored
	return nil
}

func (f *fakeUserRepository) FindByName(_ context.Context, name string) (*user.User, error) {
	u, ok := f.users[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) FindRoleByName(_ context.Context, name string) (*user.Role, error) {
	r, ok := f.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeUserRepository) seedRole(id uint, name string) {
	f.roles[name] = &user.Role{ID: id, Name: name}
	if id >= f.nextRoleID {
		f.nextRoleID = id + 1
	}
}

func TestUserService_SaveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("coalesces an existing role and inserts the new one", func(t *testing.T) {
		repo := newFakeUserRepository()
		repo.seedRole(10, "ADMIN")
		svc := user.NewService(repo)

		id, err := svc.SaveUser(ctx, user.User{
			Name:     "praveen",
			Password: "secret",
			Roles:    []user.Role{{Name: "ADMIN"}, {Name: "AUDITOR"}},
		})
		assert.NoError(t, err)
		assert.NotZero(t, id)

		saved := repo.users["praveen"]
		assert.Len(t, saved.Roles, 2)

		byName := map[string]user.Role{}
		for _, r := range saved.Roles {
			byName[r.Name] = r
		}
		// Pre-existing ADMIN keeps its identity; AUDITOR is new.
		assert.Equal(t, uint(10), byName["ADMIN"].ID)
		assert.NotZero(t, byName["AUDITOR"].ID)
		assert.NotEqual(t, uint(10), byName["AUDITOR"].ID)
	})

	t.Run("stores only the hashed password", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := user.NewService(repo)

		_, err := svc.SaveUser(ctx, user.User{Name: "praveen", Password: "secret"})
		assert.NoError(t, err)

		saved := repo.users["praveen"]
		assert.NotEqual(t, "secret", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret")))
	})

	t.Run("drops duplicate role names from the input", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := user.NewService(repo)

		_, err := svc.SaveUser(ctx, user.User{
			Name:     "praveen",
			Password: "secret",
			Roles:    []user.Role{{Name: "ADMIN"}, {Name: "ADMIN"}},
		})
		assert.NoError(t, err)
		assert.Len(t, repo.users["praveen"].Roles, 1)
	})
}

func TestUserService_LoadIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves authorities from role names", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := user.NewService(repo)

		_, err := svc.SaveUser(ctx, user.User{
			Name:     "praveen",
			Password: "secret",
			Roles:    []user.Role{{Name: "ADMIN"}, {Name: "USER"}},
		})
		assert.NoError(t, err)

		identity, err := svc.LoadIdentity(ctx, "praveen")
		assert.NoError(t, err)
		assert.Equal(t, "praveen", identity.Username)
		assert.ElementsMatch(t, []string{"ADMIN", "USER"}, identity.Authorities)
		assert.True(t, identity.HasAuthority("ADMIN"))
		assert.False(t, identity.HasAuthority("ROOT"))
	})

	t.Run("unknown user fails", func(t *testing.T) {
		repo := newFakeUserRepository()
		svc := user.NewService(repo)

		_, err := svc.LoadIdentity(ctx, "ghost")
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
