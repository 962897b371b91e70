package holiday

import (
	"time"

	"ponto/internal/platform/datekey"
)

const (
	KindFixedNational = "fixed-national"
	KindCustom        = "custom"
	KindSpecialRest   = "special-rest-day"
)

// Default descriptions for entries saved without one, matching what the
// calendar UI always wrote.
const (
	DefaultCustomDescription      = "Feriado"
	DefaultSpecialRestDescription = "Dia Especial"
)

type Entry struct {
	DateKey     string `json:"date"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// fixedNational is the built-in year-independent table, keyed MM-DD. It
// always wins over a stored entry on the same date.
var fixedNational = map[string]string{
	"01-01": "Confraternização Universal",
	"04-21": "Tiradentes",
	"09-07": "Independência do Brasil",
	"10-12": "Nossa Senhora Aparecida",
	"11-02": "Finados",
	"11-15": "Proclamação da República",
	"12-25": "Natal",
}

// FixedNational looks a date up in the built-in table.
func FixedNational(date time.Time) (Entry, bool) {
	description, ok := fixedNational[datekey.MonthDay(date)]
	if !ok {
		return Entry{}, false
	}
	return Entry{
		DateKey:     datekey.Format(date),
		Kind:        KindFixedNational,
		Description: description,
	}, true
}
