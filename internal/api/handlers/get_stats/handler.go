package get_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/analytics"
	"github.com/m04kA/SMC-RoomReservationService/internal/service/analytics/models"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgPoolNotFound  = "пул номеров не найден"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
// Query params: from, to (обязательны, обе границы включены), pool (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := types.NewDayFromString(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /stats - Invalid from parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := types.NewDayFromString(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /stats - Invalid to parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.PeriodStats(r.Context(), models.PeriodStatsRequest{
		Pool: query.Get("pool"),
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /stats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, analytics.ErrPoolNotFound):
			h.logger.Warn("GET /stats - Pool not found: pool=%s", query.Get("pool"))
			handlers.RespondNotFound(w, msgPoolNotFound)

		default:
			h.logger.Error("GET /stats - Failed to aggregate stats: pool=%s, error=%v",
				query.Get("pool"), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stats - Stats aggregated: pool=%s, reservations=%d, occupancy=%.2f",
		result.Pool, result.TotalReservations, result.OccupancyRate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
