package response

import (
	"time"

	"kairo-server/internal/domain/user"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserView(u *user.User) UserView {
	return UserView{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func NewUserViews(users []*user.User) []UserView {
	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = NewUserView(u)
	}
	return views
}
