package components

import (
	"kairo-server/internal/handler"
	"kairo-server/internal/handler/api"
	"kairo-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewSettingsHandler,
		api.NewUserHandler,
		api.NewContentHandler,
		api.NewContactHandler,
		api.NewUploadHandler,
		middleware.NewAdminAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	reservation *api.ReservationHandler,
	settings *api.SettingsHandler,
	users *api.UserHandler,
	content *api.ContentHandler,
	contact *api.ContactHandler,
	upload *api.UploadHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Booking:     booking,
		Reservation: reservation,
		Settings:    settings,
		Users:       users,
		Content:     content,
		Contact:     contact,
		Upload:      upload,
	}
}
