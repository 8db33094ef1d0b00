package domain

// Business validation constants
const (
	MinRoomCount       = 1
	MaxTitleLength     = 200
	MaxQualifierLength = 200

	// MaxSlotSearchDays верхняя граница окна поиска слотов.
	// Перебор кандидатов линейный по дням, окно больше года не имеет смысла.
	MaxSlotSearchDays = 366
)

// DateFormat формат дат во внешних интерфейсах (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// AllCategories список всех категорий программ.
// Используется при валидации и в разбивке аналитики.
var AllCategories = []Category{
	CategoryOpenProgram,
	CategoryCustomProgram,
	CategoryInstitutional,
	CategoryOther,
}
