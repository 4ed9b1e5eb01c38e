package request

import "kairo-server/internal/usecase"

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToInput() usecase.ContactInput {
	return usecase.ContactInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Subject: r.Subject,
		Message: r.Message,
	}
}
