//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"kairo-server/internal/domain/user"
	"kairo-server/internal/infra"
	"kairo-server/internal/pkg/password"
	"kairo-server/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uuid.UUID]*user.User{},
		byEmail: map[string]uuid.UUID{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, taken := f.byEmail[u.Email()]; taken {
		return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	f.byID[u.ID()] = u
	f.byEmail[u.Email()] = u.ID()
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if owner, taken := f.byEmail[u.Email()]; taken && owner != u.ID() {
		return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	f.byID[u.ID()] = u
	f.byEmail[u.Email()] = u.ID()
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func validUserInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    "nina@kairo-digital.fr",
		Name:     "Nina Laurent",
		Password: "motdepasse123",
		Role:     "editor",
	}
}

func TestUserCreate(t *testing.T) {
	t.Run("password is hashed before storage", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := usecase.NewUserUseCase(repo)

		u, err := uc.Create(context.Background(), validUserInput())
		require.NoError(t, err)

		assert.NotEqual(t, "motdepasse123", u.PasswordHash())
		assert.NoError(t, password.ComparePassword(u.PasswordHash(), "motdepasse123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := usecase.NewUserUseCase(repo)

		_, err := uc.Create(context.Background(), validUserInput())
		require.NoError(t, err)

		_, err = uc.Create(context.Background(), validUserInput())
		assert.ErrorIs(t, err, usecase.ErrDuplicateEmail)
	})

	t.Run("short password", func(t *testing.T) {
		uc := usecase.NewUserUseCase(newFakeUserRepo())

		in := validUserInput()
		in.Password = "court"
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, usecase.ErrWeakPassword)
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := usecase.NewUserUseCase(newFakeUserRepo())

		in := validUserInput()
		in.Role = "superuser"
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, usecase.ErrInvalidUser)
	})
}

func TestUserUpdate(t *testing.T) {
	setup := func(t *testing.T) (usecase.UserUseCase, *user.User) {
		t.Helper()
		uc := usecase.NewUserUseCase(newFakeUserRepo())
		u, err := uc.Create(context.Background(), validUserInput())
		require.NoError(t, err)
		return uc, u
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		uc, u := setup(t)

		name := "Nina Moreau"
		updated, err := uc.Update(context.Background(), u.ID(), usecase.UpdateUserInput{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Nina Moreau", updated.Name())
		assert.Equal(t, u.Email(), updated.Email())
	})

	t.Run("password change rehashes", func(t *testing.T) {
		uc, u := setup(t)

		newPass := "nouveaumotdepasse"
		updated, err := uc.Update(context.Background(), u.ID(), usecase.UpdateUserInput{Password: &newPass})
		require.NoError(t, err)
		assert.NoError(t, password.ComparePassword(updated.PasswordHash(), newPass))
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, _ := setup(t)

		name := "x"
		_, err := uc.Update(context.Background(), uuid.New(), usecase.UpdateUserInput{Name: &name})
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserDelete(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	u, err := uc.Create(context.Background(), validUserInput())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), u.ID()))
	assert.ErrorIs(t, uc.Delete(context.Background(), u.ID()), usecase.ErrUserNotFound)
}
