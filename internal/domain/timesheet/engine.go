package timesheet

import (
	"math"
	"time"
)

// ResolveQuota determines the daily quota for one employee on one date and
// whether the date counts as a holiday/rest day.
//
// Precedence: the weekday quota applies unless the date is holiday-classified
// (fixed national table or a stored calendar entry), in which case the rest
// quota substitutes. Independently, the fourth Sunday of the month is a
// compensatory rest day for employees with a nonzero Sunday quota; the same
// substitution applies, so hitting both rules is idempotent.
func ResolveQuota(date time.Time, cfg PayConfig, holidayOn HolidayFunc) (quota float64, holiday bool) {
	quota = cfg.WeekQuota[int(date.Weekday())]

	if holidayOn != nil && holidayOn(date) {
		holiday = true
		quota = cfg.RestQuota
	}

	if date.Weekday() == time.Sunday && cfg.WeekQuota[time.Sunday] > 0 {
		if date.Day() == FourthSunday(date.Year(), date.Month()) {
			holiday = true
			quota = cfg.RestQuota
		}
	}

	return quota, holiday
}

// FourthSunday returns the day of month of the fourth Sunday, or 0 if it
// would fall outside the month (cannot happen in the Gregorian calendar, but
// the guard keeps the contract explicit).
func FourthSunday(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Sunday) - int(first.Weekday()) + 7) % 7
	fourth := first.AddDate(0, 0, offset+21)
	if fourth.Month() != month {
		return 0
	}
	return fourth.Day()
}

// ComputeHours converts the four punches into the gross span and its
// day/night split.
//
// The night band is 22:00-05:00. The two band checks look at clock-in and
// clock-out independently on the same calendar day, so a shift that crosses
// midnight (say 23:00 in, 07:00 out) is not credited its early-morning
// portion. That limitation is inherited from the punch rules this engine
// reproduces and is kept deliberately.
func ComputeHours(p Punches) Hours {
	inMin := p.ClockIn.Minutes()
	outMin := p.ClockOut.Minutes()

	total := outMin - inMin
	// A break only counts when both ends carry an hour and the order is
	// sane hour-wise; anything else is ignored, not an error.
	breakSet := p.BreakStart.Hour != 0 && p.BreakEnd.Hour != 0
	if breakSet && p.BreakEnd.Hour >= p.BreakStart.Hour {
		total -= p.BreakEnd.Minutes() - p.BreakStart.Minutes()
	}
	totalRaw := float64(total) / 60

	night := 0
	if p.ClockIn.Hour < 5 {
		night += max(0, min(outMin, nightBandEndMinute)-inMin)
	}
	if p.ClockOut.Hour >= 22 {
		night += max(0, outMin-max(inMin, nightBandStartMinute))
	}
	if breakSet {
		startEarly := p.BreakStart.Hour < 5 && p.BreakEnd.Hour <= 5
		startLate := p.BreakStart.Hour >= 22 && p.BreakEnd.Hour >= 22
		if startEarly || startLate {
			// The break interrupted night time already counted above.
			night -= p.BreakEnd.Minutes() - p.BreakStart.Minutes()
		}
	}
	if night < 0 {
		night = 0
	}

	nightHours := float64(night) / nightHourMinutes
	dayHours := totalRaw - float64(night)/60

	return Hours{
		TotalRaw:    totalRaw,
		DayHours:    dayHours,
		NightHours:  nightHours,
		WorkedHours: dayHours + nightHours,
	}
}

// OvertimeValue prices the diurnal hours beyond quota. Rest days pay a flat
// premium; ordinary days walk the five-band escalation.
func OvertimeValue(dayHours, quota float64, holiday bool, cfg PayConfig) float64 {
	extra := math.Max(0, dayHours-quota)
	rate := cfg.HourlyRate()
	if holiday {
		return extra * rate * (1 + cfg.RestDayPremium/100)
	}
	return tieredUnits(extra, cfg) * rate
}

// tieredUnits consumes overtime hours through bands of width 2,1,1,1 and an
// unbounded fifth band, weighting each band by its premium. The result is in
// hour units; the caller applies the hourly rate.
func tieredUnits(hours float64, cfg PayConfig) float64 {
	widths := [4]float64{2, 1, 1, 1}
	total := 0.0
	remaining := hours
	for i, width := range widths {
		band := math.Min(remaining, width)
		if band > 0 {
			total += band * (1 + cfg.Tiers[i]/100)
			remaining -= band
		}
	}
	if remaining > 0 {
		total += remaining * (1 + cfg.Tiers[4]/100)
	}
	return total
}

// ComputeBreakdown is the engine entry point: punches plus pay rules plus
// calendar context in, the full day breakdown out. It never fails; missing
// inputs degrade to defaults.
//
// OvertimeHours is informational and measured against combined worked hours,
// while the overtime money is priced on diurnal hours only (night time is
// compensated through the flat night premium instead). The asymmetry is part
// of the pay rules; do not unify the two.
func ComputeBreakdown(cfg PayConfig, p Punches, cal *CalendarContext) Breakdown {
	if p.ClockIn.IsZero() && p.ClockOut.IsZero() {
		return Breakdown{}
	}

	quota, holiday := 8.0, false
	if cal != nil {
		quota, holiday = ResolveQuota(cal.Date, cfg, cal.Holidays)
	}

	h := ComputeHours(p)
	overtimeValue := OvertimeValue(h.DayHours, quota, holiday, cfg)
	nightValue := h.NightHours * cfg.HourlyRate() * nightPremiumRate

	return Breakdown{
		TotalRaw:          h.TotalRaw,
		DayHours:          h.DayHours,
		NightHours:        h.NightHours,
		WorkedHours:       h.WorkedHours,
		OvertimeHours:     math.Max(0, h.WorkedHours-quota),
		OvertimeValue:     overtimeValue,
		NightPremiumValue: nightValue,
		TotalValue:        overtimeValue + nightValue,
		QuotaHours:        quota,
		Holiday:           holiday,
	}
}
