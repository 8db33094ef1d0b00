package check_availability

import (
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/types"
)

// Request модель запроса на проверку доступности
type Request struct {
	Pool           string                    // Имя пула (пустое = пул по умолчанию)
	Start          types.Day                 // Первый занимаемый день (заезд)
	End            types.Day                 // День выезда, исключительно
	RequestedRooms int                       // Запрашиваемое количество комнат
	ForStatus      *domain.ReservationStatus // Уровень планируемой записи: confirmed сверяется только с confirmed, иначе со всеми
	ExcludeIDs     []int64                   // ID бронирований, исключаемых из расчёта (редактирование)
}

// Response модель ответа с результатом проверки доступности
type Response struct {
	Available      bool           // Достаточно ли комнат на каждый день диапазона
	MinAvailable   int            // Минимум свободных комнат по дням (худший день)
	RequestedRooms int            // Эхо запрошенного количества
	Capacity       int            // Полная ёмкость пула
	Daily          map[string]int // Свободные комнаты по дням, ключ YYYY-MM-DD
}
