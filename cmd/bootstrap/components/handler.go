package components

import (
	"library-circulation/internal/handler"
	"library-circulation/internal/handler/api"
	"library-circulation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookHandler,
		api.NewMemberHandler,
		api.NewCirculationHandler,
		api.NewReservationHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	book *api.BookHandler,
	member *api.MemberHandler,
	circulation *api.CirculationHandler,
	reservation *api.ReservationHandler,
	audit *api.AuditHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Book:        book,
		Member:      member,
		Circulation: circulation,
		Reservation: reservation,
		Audit:       audit,
	}
}
