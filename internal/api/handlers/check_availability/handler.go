package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-RoomReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgPoolNotFound  = "пул номеров не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: start, end (обязательны), pool, rooms, forStatus (опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(
		query.Get("pool"),
		query.Get("start"),
		query.Get("end"),
		query.Get("rooms"),
		query.Get("forStatus"),
	)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkAvailability.ErrPoolNotFound):
			h.logger.Warn("GET /availability - Pool not found: pool=%s", useCaseReq.Pool)
			handlers.RespondNotFound(w, msgPoolNotFound)

		default:
			h.logger.Error("GET /availability - Failed to check availability: pool=%s, error=%v",
				useCaseReq.Pool, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability checked: pool=%s, available=%t, min_available=%d",
		useCaseReq.Pool, result.Available, result.MinAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
