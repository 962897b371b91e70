package roster

import (
	"time"

	"ponto/internal/domain/timesheet"
)

// Employee is a roster member. The UUID is the stable key every punch record
// and pay config hangs off; display names can be edited or removed without
// touching historical data, which the old positional keying could not do.
type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Configured bool      `json:"configured"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConfigRecord is the stored, possibly partial pay config. Nil fields mean
// "never set" and fall back to the documented default independently of the
// others.
type ConfigRecord struct {
	BaseSalary     *float64 `json:"baseSalary,omitempty"`
	P1             *float64 `json:"p1,omitempty"`
	P2             *float64 `json:"p2,omitempty"`
	P3             *float64 `json:"p3,omitempty"`
	P4             *float64 `json:"p4,omitempty"`
	P5             *float64 `json:"p5,omitempty"`
	RestDayPremium *float64 `json:"restDayPremium,omitempty"`
	QuotaSun       *float64 `json:"quotaSun,omitempty"`
	QuotaMon       *float64 `json:"quotaMon,omitempty"`
	QuotaTue       *float64 `json:"quotaTue,omitempty"`
	QuotaWed       *float64 `json:"quotaWed,omitempty"`
	QuotaThu       *float64 `json:"quotaThu,omitempty"`
	QuotaFri       *float64 `json:"quotaFri,omitempty"`
	QuotaSat       *float64 `json:"quotaSat,omitempty"`
	RestQuota      *float64 `json:"restQuota,omitempty"`
}

// PayConfig merges the record over the engine defaults.
func (r ConfigRecord) PayConfig() timesheet.PayConfig {
	cfg := timesheet.DefaultPayConfig()
	assign(&cfg.BaseSalary, r.BaseSalary)
	assign(&cfg.Tiers[0], r.P1)
	assign(&cfg.Tiers[1], r.P2)
	assign(&cfg.Tiers[2], r.P3)
	assign(&cfg.Tiers[3], r.P4)
	assign(&cfg.Tiers[4], r.P5)
	assign(&cfg.RestDayPremium, r.RestDayPremium)
	assign(&cfg.WeekQuota[0], r.QuotaSun)
	assign(&cfg.WeekQuota[1], r.QuotaMon)
	assign(&cfg.WeekQuota[2], r.QuotaTue)
	assign(&cfg.WeekQuota[3], r.QuotaWed)
	assign(&cfg.WeekQuota[4], r.QuotaThu)
	assign(&cfg.WeekQuota[5], r.QuotaFri)
	assign(&cfg.WeekQuota[6], r.QuotaSat)
	assign(&cfg.RestQuota, r.RestQuota)
	return cfg
}

func assign(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
