package timesheet

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func punches(clockIn, breakStart, breakEnd, clockOut string) Punches {
	return PunchRecord{
		ClockIn:    clockIn,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
		ClockOut:   clockOut,
	}.Punches()
}

func TestComputeHoursOrdinaryDay(t *testing.T) {
	h := ComputeHours(punches("08:00", "12:00", "13:00", "18:00"))

	if !almostEqual(h.TotalRaw, 9) {
		t.Fatalf("expected total 9, got %v", h.TotalRaw)
	}
	if !almostEqual(h.NightHours, 0) {
		t.Fatalf("expected no night hours, got %v", h.NightHours)
	}
	if !almostEqual(h.DayHours, 9) {
		t.Fatalf("expected day 9, got %v", h.DayHours)
	}
	if !almostEqual(h.WorkedHours, h.DayHours+h.NightHours) {
		t.Fatalf("worked %v must equal day %v + night %v", h.WorkedHours, h.DayHours, h.NightHours)
	}
}

func TestComputeHoursEveningShift(t *testing.T) {
	// 18:00 to 23:30; the stretch past 22:00 is 90 nominal minutes, and a
	// nominal night hour is 52.5 minutes long.
	h := ComputeHours(punches("18:00", "", "", "23:30"))

	if !almostEqual(h.TotalRaw, 5.5) {
		t.Fatalf("expected total 5.5, got %v", h.TotalRaw)
	}
	if !almostEqual(h.NightHours, 90.0/52.5) {
		t.Fatalf("expected night %v, got %v", 90.0/52.5, h.NightHours)
	}
	if !almostEqual(h.DayHours, 5.5-1.5) {
		t.Fatalf("expected day 4, got %v", h.DayHours)
	}
	if !almostEqual(h.WorkedHours, h.DayHours+h.NightHours) {
		t.Fatalf("worked %v must equal day %v + night %v", h.WorkedHours, h.DayHours, h.NightHours)
	}
}

func TestComputeHoursEarlyMorningShift(t *testing.T) {
	// 01:00 to 09:00; only the stretch before 05:00 is night time.
	h := ComputeHours(punches("01:00", "", "", "09:00"))

	if !almostEqual(h.TotalRaw, 8) {
		t.Fatalf("expected total 8, got %v", h.TotalRaw)
	}
	if !almostEqual(h.NightHours, 240.0/52.5) {
		t.Fatalf("expected night %v, got %v", 240.0/52.5, h.NightHours)
	}
	if !almostEqual(h.DayHours, 4) {
		t.Fatalf("expected day 4, got %v", h.DayHours)
	}
}

func TestComputeHoursMidnightWrapNotCredited(t *testing.T) {
	// A shift crossing midnight is outside the supported punch rules; both
	// band checks miss it and the raw span goes negative. The money side
	// clamps to zero further up, this only pins the arithmetic.
	h := ComputeHours(punches("23:00", "", "", "07:00"))

	if !almostEqual(h.TotalRaw, -16) {
		t.Fatalf("expected raw -16, got %v", h.TotalRaw)
	}
	if !almostEqual(h.NightHours, 0) {
		t.Fatalf("expected no night credit, got %v", h.NightHours)
	}
}

func TestComputeHoursBreakInsideNightBand(t *testing.T) {
	// Break 23:00 to 23:30 interrupts night time already counted.
	h := ComputeHours(punches("18:00", "23:00", "23:30", "23:45"))

	// Gross: 18:00-23:45 minus 30min break. Night: 23:45-22:00 minus the
	// same 30min break.
	if !almostEqual(h.TotalRaw, 5.25) {
		t.Fatalf("expected total 5.25, got %v", h.TotalRaw)
	}
	if !almostEqual(h.NightHours, 75.0/52.5) {
		t.Fatalf("expected night %v, got %v", 75.0/52.5, h.NightHours)
	}
}

func TestComputeHoursBreakWithZeroHourIgnored(t *testing.T) {
	// A break starting in the 00:xx hour is indistinguishable from an empty
	// cell and is ignored.
	with := ComputeHours(punches("08:00", "00:30", "01:00", "17:00"))
	without := ComputeHours(punches("08:00", "", "", "17:00"))

	if !almostEqual(with.TotalRaw, without.TotalRaw) {
		t.Fatalf("expected break ignored, got %v vs %v", with.TotalRaw, without.TotalRaw)
	}
}

func TestOvertimeValueTierEscalation(t *testing.T) {
	cfg := DefaultPayConfig()
	cfg.Tiers = [5]float64{50, 60, 70, 80, 100}
	rate := cfg.HourlyRate()

	// 14 diurnal hours against quota 8: bands 2,1,1,1 then 1 in the open
	// fifth band.
	got := OvertimeValue(14, 8, false, cfg)
	want := (2*1.5 + 1*1.6 + 1*1.7 + 1*1.8 + 1*2.0) * rate
	if !almostEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOvertimeValueUniformTiersCollapse(t *testing.T) {
	cfg := DefaultPayConfig()
	rate := cfg.HourlyRate()

	// With every tier at 50% the escalation degenerates to a single band.
	got := OvertimeValue(14, 8, false, cfg)
	if !almostEqual(got, 6*1.5*rate) {
		t.Fatalf("expected %v, got %v", 6*1.5*rate, got)
	}
}

func TestOvertimeValueHolidayFlat(t *testing.T) {
	cfg := DefaultPayConfig()
	rate := cfg.HourlyRate()

	got := OvertimeValue(8, 0, true, cfg)
	if !almostEqual(got, 8*rate*2) {
		t.Fatalf("expected %v, got %v", 8*rate*2, got)
	}
}

func TestOvertimeValueNeverNegative(t *testing.T) {
	cfg := DefaultPayConfig()
	if got := OvertimeValue(5, 8, false, cfg); !almostEqual(got, 0) {
		t.Fatalf("expected 0 under quota, got %v", got)
	}
	if got := OvertimeValue(5, 8, true, cfg); !almostEqual(got, 0) {
		t.Fatalf("expected 0 under quota on holiday, got %v", got)
	}
}

func TestFourthSunday(t *testing.T) {
	// June 2025 starts on a Sunday, so the fourth one is the 22nd.
	if got := FourthSunday(2025, time.June); got != 22 {
		t.Fatalf("expected 22, got %d", got)
	}
	// September 2025 starts on a Monday; first Sunday is the 7th.
	if got := FourthSunday(2025, time.September); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
}

func TestResolveQuotaWeekday(t *testing.T) {
	cfg := DefaultPayConfig()

	// 2025-06-16 is a Monday.
	quota, holiday := ResolveQuota(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), cfg, nil)
	if quota != 8 || holiday {
		t.Fatalf("expected quota 8 on a plain Monday, got %v holiday=%v", quota, holiday)
	}

	// 2025-06-21 is a Saturday.
	quota, holiday = ResolveQuota(time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), cfg, nil)
	if quota != 4 || holiday {
		t.Fatalf("expected quota 4 on Saturday, got %v holiday=%v", quota, holiday)
	}
}

func TestResolveQuotaHolidaySubstitutesRestQuota(t *testing.T) {
	cfg := DefaultPayConfig()
	cfg.RestQuota = 2

	date := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	quota, holiday := ResolveQuota(date, cfg, func(d time.Time) bool { return d.Equal(date) })
	if !holiday || quota != 2 {
		t.Fatalf("expected rest quota 2 on holiday, got %v holiday=%v", quota, holiday)
	}
}

func TestResolveQuotaFourthSundayRestRule(t *testing.T) {
	cfg := DefaultPayConfig()
	cfg.WeekQuota[time.Sunday] = 6
	fourth := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)

	quota, holiday := ResolveQuota(fourth, cfg, nil)
	if !holiday || quota != cfg.RestQuota {
		t.Fatalf("expected fourth-Sunday rest day, got quota %v holiday=%v", quota, holiday)
	}

	// Other Sundays keep the configured Sunday quota.
	quota, holiday = ResolveQuota(time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC), cfg, nil)
	if holiday || quota != 6 {
		t.Fatalf("expected ordinary Sunday quota 6, got %v holiday=%v", quota, holiday)
	}
}

func TestResolveQuotaFourthSundaySkippedWithoutSundayWork(t *testing.T) {
	cfg := DefaultPayConfig()

	// Default Sunday quota is zero; the rest rule does not apply.
	quota, holiday := ResolveQuota(time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), cfg, nil)
	if holiday || quota != 0 {
		t.Fatalf("expected plain zero-quota Sunday, got %v holiday=%v", quota, holiday)
	}
}

func TestResolveQuotaFourthSundayIdempotentWithHoliday(t *testing.T) {
	cfg := DefaultPayConfig()
	cfg.WeekQuota[time.Sunday] = 6
	cfg.RestQuota = 0
	fourth := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)

	// Stored holiday and rest rule both hit; substitution must not differ
	// from either alone.
	quota, holiday := ResolveQuota(fourth, cfg, func(time.Time) bool { return true })
	if !holiday || quota != 0 {
		t.Fatalf("expected single substitution, got quota %v holiday=%v", quota, holiday)
	}
}

func TestComputeBreakdownEmptyPunches(t *testing.T) {
	cal := &CalendarContext{Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}
	got := ComputeBreakdown(DefaultPayConfig(), punches("", "12:00", "13:00", ""), cal)
	if got != (Breakdown{}) {
		t.Fatalf("expected zero breakdown for empty clock punches, got %+v", got)
	}
}

func TestComputeBreakdownOrdinaryOvertime(t *testing.T) {
	cfg := DefaultPayConfig()
	cal := &CalendarContext{Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}

	got := ComputeBreakdown(cfg, punches("08:00", "12:00", "13:00", "18:00"), cal)

	// Rate is 3300/220 = 15; one extra hour at 50% is 22.50.
	if !almostEqual(got.OvertimeHours, 1) {
		t.Fatalf("expected 1 overtime hour, got %v", got.OvertimeHours)
	}
	if !almostEqual(got.OvertimeValue, 22.5) {
		t.Fatalf("expected 22.50, got %v", got.OvertimeValue)
	}
	if !almostEqual(got.TotalValue, 22.5) {
		t.Fatalf("expected total 22.50, got %v", got.TotalValue)
	}
	if got.Holiday {
		t.Fatalf("plain Monday must not be a holiday")
	}
	if !almostEqual(got.QuotaHours, 8) {
		t.Fatalf("expected quota 8, got %v", got.QuotaHours)
	}
}

func TestComputeBreakdownChristmasFlatPremium(t *testing.T) {
	cfg := DefaultPayConfig()
	cal := &CalendarContext{
		Date:     time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Holidays: func(d time.Time) bool { return d.Month() == time.December && d.Day() == 25 },
	}

	got := ComputeBreakdown(cfg, punches("08:00", "12:00", "13:00", "17:00"), cal)

	if !got.Holiday {
		t.Fatalf("expected holiday classification")
	}
	if !almostEqual(got.QuotaHours, 0) {
		t.Fatalf("expected rest quota 0, got %v", got.QuotaHours)
	}
	// 8 diurnal hours, all beyond the zero quota, at double rate.
	if !almostEqual(got.OvertimeValue, 8*15*2) {
		t.Fatalf("expected %v, got %v", 8.0*15*2, got.OvertimeValue)
	}
}

func TestComputeBreakdownNightPremium(t *testing.T) {
	cfg := DefaultPayConfig()
	cal := &CalendarContext{Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}

	got := ComputeBreakdown(cfg, punches("18:00", "", "", "23:30"), cal)

	nightHours := 90.0 / 52.5
	if !almostEqual(got.NightPremiumValue, nightHours*15*0.20) {
		t.Fatalf("expected night premium %v, got %v", nightHours*15*0.20, got.NightPremiumValue)
	}
	// Under quota, so the premium is the whole payout.
	if !almostEqual(got.TotalValue, got.NightPremiumValue) {
		t.Fatalf("expected total %v, got %v", got.NightPremiumValue, got.TotalValue)
	}
	if !almostEqual(got.OvertimeHours, 0) {
		t.Fatalf("expected no overtime under quota, got %v", got.OvertimeHours)
	}
}

func TestComputeBreakdownNilCalendarDefaults(t *testing.T) {
	got := ComputeBreakdown(DefaultPayConfig(), punches("08:00", "12:00", "13:00", "18:00"), nil)
	if !almostEqual(got.QuotaHours, 8) || got.Holiday {
		t.Fatalf("expected degraded quota 8, got %v holiday=%v", got.QuotaHours, got.Holiday)
	}
}

func TestComputeBreakdownOvertimeHoursCountNight(t *testing.T) {
	cfg := DefaultPayConfig()
	cal := &CalendarContext{Date: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}

	// 13:00 to 23:30: worked hours exceed the quota partly through night
	// time. The displayed overtime tracks worked hours, the money only the
	// diurnal part.
	got := ComputeBreakdown(cfg, punches("13:00", "", "", "23:30"), cal)

	if !almostEqual(got.OvertimeHours, got.WorkedHours-8) {
		t.Fatalf("expected overtime %v, got %v", got.WorkedHours-8, got.OvertimeHours)
	}
	if !almostEqual(got.OvertimeValue, OvertimeValue(got.DayHours, 8, false, cfg)) {
		t.Fatalf("overtime money must price diurnal hours only")
	}
}
