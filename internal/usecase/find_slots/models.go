package find_slots

import "github.com/m04kA/SMC-RoomReservationService/pkg/types"

// Request модель запроса на поиск свободных слотов
type Request struct {
	Pool            string    // Имя пула (пустое = пул по умолчанию)
	EarliestCheckIn types.Day // Самый ранний допустимый день заезда
	LatestCheckOut  types.Day // Крайний день, к которому нужно выехать
	Nights          int       // Длительность слота в ночах
	RequestedRooms  int       // Запрашиваемое количество комнат
}

// Slot найденный слот: непрерывный диапазон запрошенной длины,
// на каждый день которого свободно не меньше запрошенного количества комнат
type Slot struct {
	Start        types.Day // День заезда
	End          types.Day // День выезда, исключительно
	MinAvailable int       // Минимум свободных комнат по дням слота
}

// Response модель ответа со списком слотов, упорядоченных по дню заезда
type Response struct {
	Pool  string
	Slots []Slot
}
