package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// validateRequest валидирует инварианты бронирования локально, без I/O.
// Ошибки валидации никогда не доходят до хранилища.
// Превышение ёмкости пула здесь не проверяется: запрос большего количества
// комнат, чем ёмкость, отсекается проверкой доступности и возвращается как
// CapacityExceededError с minAvailable, чтобы вызывающий видел реальный предел.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if !req.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	if req.Category.RequiresQualifier() {
		if req.CategoryQualifier == nil || strings.TrimSpace(*req.CategoryQualifier) == "" {
			return fmt.Errorf("%w: category %q requires a qualifier", ErrInvalidInput, req.Category)
		}
	}
	if req.CategoryQualifier != nil && len(*req.CategoryQualifier) > domain.MaxQualifierLength {
		return fmt.Errorf("%w: category qualifier must not exceed %d characters", ErrInvalidInput, domain.MaxQualifierLength)
	}

	if !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown reservation status %q", ErrInvalidInput, req.Status)
	}

	if req.RoomCount < domain.MinRoomCount {
		return fmt.Errorf("%w: roomCount must be at least %d", ErrInvalidInput, domain.MinRoomCount)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if !req.StartDate.Before(req.EndDate) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidInput)
	}

	return nil
}
