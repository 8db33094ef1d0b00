package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/reservations"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgPoolNotFound  = "пул номеров не найден"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: pool, from, to, status (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("pool"),
		query.Get("from"),
		query.Get("to"),
		query.Get("status"),
	)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, reservations.ErrPoolNotFound):
			h.logger.Warn("GET /reservations - Pool not found: pool=%s", serviceReq.Pool)
			handlers.RespondNotFound(w, msgPoolNotFound)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: pool=%s, error=%v",
				serviceReq.Pool, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: pool=%s, count=%d",
		result.Pool, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
