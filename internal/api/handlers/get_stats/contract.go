package get_stats

import (
	"context"

	"github.com/m04kA/SMC-RoomReservationService/internal/service/analytics/models"
)

type AnalyticsService interface {
	PeriodStats(ctx context.Context, req models.PeriodStatsRequest) (*models.PeriodStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
