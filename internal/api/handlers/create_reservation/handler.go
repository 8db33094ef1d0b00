package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgPoolNotFound       = "пул номеров не найден"
	msgNotEnoughRooms     = "недостаточно свободных номеров на запрошенные даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Нехватка комнат несёт детали (худший день), отдаём их в теле
		var capErr *domain.CapacityExceededError
		if errors.As(err, &capErr) {
			h.logger.Warn("POST /reservations - Not enough rooms: pool=%s, requested=%d, min_available=%d",
				capErr.Pool, capErr.Requested, capErr.MinAvailable)
			handlers.RespondJSON(w, http.StatusConflict, CapacityConflictResponse{
				Error:          msgNotEnoughRooms,
				Pool:           capErr.Pool,
				RequestedRooms: capErr.Requested,
				MinAvailable:   capErr.MinAvailable,
			})
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrPoolNotFound):
			h.logger.Warn("POST /reservations - Pool not found: pool=%s", req.Pool)
			handlers.RespondNotFound(w, msgPoolNotFound)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: title=%s, error=%v",
				req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, pool=%s, evicted=%d",
		result.ID, result.Pool, len(result.EvictedProvisional))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
