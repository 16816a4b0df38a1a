package domain

// Default template values
const (
	DefaultSlotDurationMinutes = 10
	DefaultMonthsAhead         = 3
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 240 // 4 hours
	MinMonthsAhead         = 1
	MaxMonthsAhead         = 12
	MinWeekNumber          = 1
	MaxWeekNumber          = 5
	MaxNotesLength         = 500
	MaxFullNameLength      = 200
	MaxEmailLength         = 254
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
