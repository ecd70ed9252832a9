package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	timeLayout     = "15:04"
	invalidMinutes = -1
)

// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// Часы из одной или двух цифр, секунды допускаются в форме Postgres TIME
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// TimeString время суток в 24-часовом формате HH:MM (без даты и часового пояса).
// Нулевое значение ("") означает, что время не задано.
// "24:00" означает конец суток и годится только как правая граница интервала.
type TimeString string

// EndOfDay граница суток: день, закрывающийся в EndOfDay, открыт и в 23:59
const EndOfDay TimeString = "24:00"

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит "H:MM", "HH:MM" или "HH:MM:SS" (как TIME отдает Postgres)
// и возвращает каноническую форму HH:MM. Секунды отбрасываются.
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseClock(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return fromMinutes(minutes), nil
}

func parseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds := 0
	if m[3] != "" {
		seconds, _ = strconv.Atoi(m[3])
	}

	if minutes > 59 || seconds > 59 || hours > 24 || (hours == 24 && (minutes > 0 || seconds > 0)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hours*60 + minutes, nil
}

func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение записано в канонической форме HH:MM
func (t TimeString) Validate() error {
	canonical, err := NewTimeStringFromString(string(t))
	if err != nil || canonical != t {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от полуночи, для EndOfDay это 1440
func (t TimeString) Minutes() (int, error) {
	return parseClock(string(t))
}

func (t TimeString) minutesOrInvalid() int {
	m, err := t.Minutes()
	if err != nil {
		return invalidMinutes
	}
	return m
}

// IsBefore возвращает true, если t строго раньше other.
// Некорректные значения ни с чем не сравниваются.
func (t TimeString) IsBefore(other TimeString) bool {
	a, b := t.minutesOrInvalid(), other.minutesOrInvalid()
	if a == invalidMinutes || b == invalidMinutes {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Scan реализует sql.Scanner. Поддерживает TIME из Postgres ("09:00:00") и NULL.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		// lib/pq отдает TIME '24:00' как полночь следующего дня
		if v.YearDay() == 2 && v.Hour() == 0 && v.Minute() == 0 {
			*t = EndOfDay
			return nil
		}
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer. Пустое время пишется как NULL.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// UnmarshalJSON принимает строку HH:MM или HH:MM:SS, пустая строка и null дают нулевое значение
func (t *TimeString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}

	return t.scanString(s)
}
