package domain

// Week layout
const (
	DaysInWeek = 7
	Monday     = 1
	Sunday     = 7
)

// Business validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
	MaxActivityIDLength  = 64
	MaxCalendarDays      = 93 // about one quarter
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
