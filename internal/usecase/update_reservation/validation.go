package update_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

// validateRequest валидирует инварианты бронирования локально, без I/O.
// Как и при создании, превышение ёмкости пула отсекается проверкой
// доступности, а не валидацией (см. create_reservation).
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if !req.OriginalStatus.IsValid() {
		return fmt.Errorf("%w: unknown original status %q", ErrInvalidInput, req.OriginalStatus)
	}

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
