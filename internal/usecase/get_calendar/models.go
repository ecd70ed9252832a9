package get_calendar

import (
	"time"

	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
)

// Request модель запроса календаря доступности
type Request struct {
	ActivityID string    // ID активности
	From       time.Time // Первая дата (включительно)
	To         time.Time // Последняя дата (включительно)
}

// Response модель ответа
type Response struct {
	ActivityID string
	From       time.Time
	To         time.Time
	Days       []Day // По одному элементу на каждую дату диапазона
}

// Day доступность активности в одну дату
type Day struct {
	Date      time.Time
	IsOpen    bool // Хотя бы один период открыт в этот день недели
	Schedules []getAvailability.ScheduleEntry
}
