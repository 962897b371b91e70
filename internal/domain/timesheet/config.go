package timesheet

const (
	// DefaultBaseSalary applies to employees without a saved pay config.
	DefaultBaseSalary = 3300

	// DefaultTierPercent is the premium applied on every overtime band when
	// none is configured.
	DefaultTierPercent = 50

	// DefaultRestDayPercent is the flat premium for overtime worked on a
	// holiday or rest day.
	DefaultRestDayPercent = 100

	// hourlyDivisor converts a monthly salary into an hourly rate
	// (220-hour reference month).
	hourlyDivisor = 220

	// nightHourMinutes is the nominal length of a night hour: 52.5 real
	// minutes count as one night hour.
	nightHourMinutes = 52.5

	// nightPremiumRate is the flat differential paid on night hours.
	nightPremiumRate = 0.20

	nightBandEndMinute   = 5 * 60
	nightBandStartMinute = 22 * 60
)

// PayConfig carries the per-employee pay rules. WeekQuota is indexed by
// weekday, Sunday first, matching time.Weekday.
type PayConfig struct {
	BaseSalary     float64
	Tiers          [5]float64
	RestDayPremium float64
	WeekQuota      [7]float64
	RestQuota      float64
}

// DefaultPayConfig returns the rules used for employees that were never
// configured: Mon-Fri 8h, Sat 4h, Sun off, 50% on every overtime band and
// 100% on rest days.
func DefaultPayConfig() PayConfig {
	return PayConfig{
		BaseSalary:     DefaultBaseSalary,
		Tiers:          [5]float64{DefaultTierPercent, DefaultTierPercent, DefaultTierPercent, DefaultTierPercent, DefaultTierPercent},
		RestDayPremium: DefaultRestDayPercent,
		WeekQuota:      [7]float64{0, 8, 8, 8, 8, 8, 4},
		RestQuota:      0,
	}
}

// HourlyRate derives the hourly wage from the monthly base salary.
func (c PayConfig) HourlyRate() float64 {
	return c.BaseSalary / hourlyDivisor
}
