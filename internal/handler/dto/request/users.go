package request

import "kairo-server/internal/usecase"

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin editor"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Role:     r.Role,
	}
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
	}
}
