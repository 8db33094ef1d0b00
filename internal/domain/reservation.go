package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// ReservationStatus represents the priority tier of a reservation
type ReservationStatus string

const (
	// StatusConfirmed подтверждённое бронирование, имеет приоритет над provisional
	StatusConfirmed ReservationStatus = "confirmed"
	// StatusProvisional предварительное ("карандашное") бронирование
	StatusProvisional ReservationStatus = "provisional"
)

// IsValid returns true if the status is one of the known tiers
func (s ReservationStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusProvisional
}

// Category represents the program type a reservation belongs to
type Category string

const (
	CategoryOpenProgram   Category = "open_program"
	CategoryCustomProgram Category = "custom_program"
	CategoryInstitutional Category = "institutional"
	CategoryOther         Category = "other"
)

// IsValid returns true if the category is one of the known program types
func (c Category) IsValid() bool {
	switch c {
	case CategoryOpenProgram, CategoryCustomProgram, CategoryInstitutional, CategoryOther:
		return true
	default:
		return false
	}
}

// RequiresQualifier returns true if the category needs a free-text qualifier
func (c Category) RequiresQualifier() bool {
	return c == CategoryInstitutional || c == CategoryOther
}

// Reservation represents a block of rooms held for a program over a date range
type Reservation struct {
	ID                int64
	Title             string
	Category          Category
	CategoryQualifier *string // Обязателен для категорий institutional и other
	RoomCount         int
	Status            ReservationStatus
	StartDate         types.Day // Первый занятый день (заезд)
	EndDate           types.Day // Первый СВОБОДНЫЙ день (выезд, исключительно)
	Pool              string    // Имя пула номеров, из которого берутся комнаты

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of occupied days of the reservation
func (r *Reservation) Nights() int {
	return r.StartDate.DaysUntil(r.EndDate)
}

// IsConfirmed returns true if the reservation is in the confirmed tier
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// IsProvisional returns true if the reservation is in the provisional tier
func (r *Reservation) IsProvisional() bool {
	return r.Status == StatusProvisional
}

// CoversDay returns true if the day falls inside the half-open range [StartDate, EndDate)
func (r *Reservation) CoversDay(d types.Day) bool {
	return !d.Before(r.StartDate) && d.Before(r.EndDate)
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	Pool      string             // Обязательный параметр
	StartDate *types.Day         // Начало периода (опционально)
	EndDate   *types.Day         // Конец периода, исключительно (опционально)
	Status    *ReservationStatus // Фильтр по уровню (опционально)
}
