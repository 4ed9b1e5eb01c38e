//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"kairo-server/internal/handler/api"
	"kairo-server/internal/infra/postgres"
	"kairo-server/internal/usecase"
	"kairo-server/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubContactUseCase struct {
	msg *postgres.ContactMessage
	err error
}

func (s *stubContactUseCase) Submit(_ context.Context, in usecase.ContactInput) (*postgres.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.msg.Name = in.Name
	return s.msg, nil
}

type ContactHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubContactUseCase
}

func (s *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.stub = &stubContactUseCase{msg: &postgres.ContactMessage{}}
	handler := api.NewContactHandler(s.stub)
	s.router.POST("/api/contact", handler.Submit)
}

func TestContactHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}

func (s *ContactHandlerTestSuite) TestSubmit() {
	url := "/api/contact"

	s.Run("success: 201", func() {
		body := map[string]any{
			"name":    "Sophie Bernard",
			"email":   "sophie@example.com",
			"message": "Bonjour, j'aimerais un devis.",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 missing message", func() {
		body := map[string]any{"name": "Sophie", "email": "sophie@example.com"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 invalid payload", func() {
		s.stub.err = usecase.ErrInvalidContact
		defer func() { s.stub.err = nil }()

		body := map[string]any{"name": "  ", "email": "sophie@example.com", "message": "x"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Message de contact invalide")
	})
}
