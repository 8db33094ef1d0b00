package find_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	findSlots "github.com/m04kA/SMC-RoomReservationService/internal/usecase/find_slots"
)

const (
	msgInvalidParams  = "некорректные параметры запроса"
	msgPoolNotFound   = "пул номеров не найден"
	msgWindowTooLarge = "окно поиска слишком большое"
)

type Handler struct {
	useCase FindSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: earliest, latest, nights (обязательны), pool, rooms (опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(
		query.Get("pool"),
		query.Get("earliest"),
		query.Get("latest"),
		query.Get("nights"),
		query.Get("rooms"),
	)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, findSlots.ErrWindowTooLarge):
			h.logger.Warn("GET /slots - Search window too large: earliest=%s, latest=%s",
				useCaseReq.EarliestCheckIn, useCaseReq.LatestCheckOut)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, findSlots.ErrPoolNotFound):
			h.logger.Warn("GET /slots - Pool not found: pool=%s", useCaseReq.Pool)
			handlers.RespondNotFound(w, msgPoolNotFound)

		default:
			h.logger.Error("GET /slots - Failed to find slots: pool=%s, error=%v", useCaseReq.Pool, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots found: pool=%s, count=%d", result.Pool, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
