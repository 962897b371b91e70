package roster

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestPayConfigDefaults(t *testing.T) {
	cfg := ConfigRecord{}.PayConfig()

	if cfg.BaseSalary != 3300 {
		t.Fatalf("expected default salary 3300, got %v", cfg.BaseSalary)
	}
	for i, tier := range cfg.Tiers {
		if tier != 50 {
			t.Fatalf("expected tier %d default 50, got %v", i+1, tier)
		}
	}
	if cfg.RestDayPremium != 100 {
		t.Fatalf("expected rest premium 100, got %v", cfg.RestDayPremium)
	}
	if cfg.WeekQuota[time.Sunday] != 0 || cfg.WeekQuota[time.Monday] != 8 || cfg.WeekQuota[time.Saturday] != 4 {
		t.Fatalf("unexpected default week quotas: %v", cfg.WeekQuota)
	}
	if cfg.RestQuota != 0 {
		t.Fatalf("expected rest quota 0, got %v", cfg.RestQuota)
	}
}

func TestPayConfigPartialOverride(t *testing.T) {
	record := ConfigRecord{
		BaseSalary: floatPtr(4400),
		P3:         floatPtr(75),
		QuotaSat:   floatPtr(6),
	}
	cfg := record.PayConfig()

	if cfg.BaseSalary != 4400 {
		t.Fatalf("expected salary 4400, got %v", cfg.BaseSalary)
	}
	if cfg.Tiers[2] != 75 {
		t.Fatalf("expected third tier 75, got %v", cfg.Tiers[2])
	}
	// Untouched fields keep defaults.
	if cfg.Tiers[0] != 50 || cfg.Tiers[4] != 50 {
		t.Fatalf("expected untouched tiers at 50, got %v", cfg.Tiers)
	}
	if cfg.WeekQuota[time.Saturday] != 6 {
		t.Fatalf("expected Saturday quota 6, got %v", cfg.WeekQuota[time.Saturday])
	}
	if cfg.WeekQuota[time.Monday] != 8 {
		t.Fatalf("expected Monday quota default 8, got %v", cfg.WeekQuota[time.Monday])
	}
}

func TestPayConfigExplicitZeroSticks(t *testing.T) {
	// An explicit zero is a real value, not a missing one.
	record := ConfigRecord{QuotaSat: floatPtr(0), P1: floatPtr(0)}
	cfg := record.PayConfig()

	if cfg.WeekQuota[time.Saturday] != 0 {
		t.Fatalf("expected explicit Saturday quota 0, got %v", cfg.WeekQuota[time.Saturday])
	}
	if cfg.Tiers[0] != 0 {
		t.Fatalf("expected explicit first tier 0, got %v", cfg.Tiers[0])
	}
}

func TestSortNamesBrazilianOrder(t *testing.T) {
	names := []string{"Érica", "Carlos", "Ana", "Átila"}
	SortNames(names)

	want := []string{"Ana", "Átila", "Carlos", "Érica"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, names)
		}
	}
}
