package timesheet

import "time"

// Punches holds the four daily time punches for one employee.
type Punches struct {
	ClockIn    Clock
	BreakStart Clock
	BreakEnd   Clock
	ClockOut   Clock
}

// PunchRecord is the persisted form of a day's punches: raw "HH:MM" strings,
// empty when the field was never filled in.
type PunchRecord struct {
	EmployeeID string `json:"employeeId"`
	ClockIn    string `json:"clockIn"`
	BreakStart string `json:"breakStart"`
	BreakEnd   string `json:"breakEnd"`
	ClockOut   string `json:"clockOut"`
}

// Punches parses the stored strings into clock values.
func (r PunchRecord) Punches() Punches {
	return Punches{
		ClockIn:    ParseClock(r.ClockIn),
		BreakStart: ParseClock(r.BreakStart),
		BreakEnd:   ParseClock(r.BreakEnd),
		ClockOut:   ParseClock(r.ClockOut),
	}
}

// Empty reports whether no punch field was filled in at all.
func (r PunchRecord) Empty() bool {
	return r.ClockIn == "" && r.BreakStart == "" && r.BreakEnd == "" && r.ClockOut == ""
}

// Hours is the time portion of a breakdown, before any money is attached.
type Hours struct {
	TotalRaw    float64 `json:"totalRaw"`
	DayHours    float64 `json:"dayHours"`
	NightHours  float64 `json:"nightHours"`
	WorkedHours float64 `json:"workedHours"`
}

// Breakdown is the full per-employee, per-day result. It is recomputed on
// every request and never persisted.
type Breakdown struct {
	TotalRaw          float64 `json:"totalRaw"`
	DayHours          float64 `json:"dayHours"`
	NightHours        float64 `json:"nightHours"`
	WorkedHours       float64 `json:"workedHours"`
	OvertimeHours     float64 `json:"overtimeHours"`
	OvertimeValue     float64 `json:"overtimeValue"`
	NightPremiumValue float64 `json:"nightPremiumValue"`
	TotalValue        float64 `json:"totalValue"`
	QuotaHours        float64 `json:"quotaHours"`
	Holiday           bool    `json:"holiday"`
}

// HolidayFunc reports whether a calendar date is holiday-classified. The
// engine only needs the yes/no answer; descriptions stay with the holiday
// domain.
type HolidayFunc func(date time.Time) bool

// CalendarContext anchors a computation to a concrete calendar day. A nil
// context puts the engine in its degraded mode: quota 8, never a holiday.
type CalendarContext struct {
	Date     time.Time
	Holidays HolidayFunc
}
