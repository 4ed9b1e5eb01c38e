package usecase

import (
	"context"

	"kairo-server/internal/domain/user"
	"kairo-server/internal/infra"
	"kairo-server/internal/pkg/errs"
	"kairo-server/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errs.New("email already in use")
	ErrInvalidUser    = errs.New("invalid user data")
	ErrWeakPassword   = errs.New("password too weak")
)

type UserRepository interface {
	UserChecker
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// UpdateUserInput carries a partial update; nil fields are untouched.
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
}

type UserUseCase interface {
	Create(ctx context.Context, in CreateUserInput) (*user.User, error)
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	repo UserRepository
}

func NewUserUseCase(repo UserRepository) UserUseCase {
	return &userUseCaseImpl{repo: repo}
}

func (u *userUseCaseImpl) Create(ctx context.Context, in CreateUserInput) (*user.User, error) {
	if len(in.Password) < 8 {
		return nil, ErrWeakPassword
	}

	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(in.Email, in.Name, hash, role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	if err := u.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return entity, nil
}

func (u *userUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	entity, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return entity, nil
}

func (u *userUseCaseImpl) List(ctx context.Context) ([]*user.User, error) {
	return u.repo.List(ctx)
}

func (u *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*user.User, error) {
	entity, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if in.Email != nil {
		if err := entity.ChangeEmail(*in.Email); err != nil {
			return nil, errs.Mark(err, ErrInvalidUser)
		}
	}
	if in.Name != nil {
		if err := entity.Rename(*in.Name); err != nil {
			return nil, errs.Mark(err, ErrInvalidUser)
		}
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, ErrWeakPassword
		}
		hash, err := password.HashPassword(*in.Password)
		if err != nil {
			return nil, errs.Wrap(err, "failed to hash password")
		}
		entity.ChangePasswordHash(hash)
	}

	if err := u.repo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return entity, nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
