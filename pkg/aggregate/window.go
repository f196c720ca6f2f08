package aggregate

import (
	"GoFinance/pkg/format"
	"time"
)

// MonthWindow is the (month, year) pair a category breakdown is computed
// over. Navigation moves by whole calendar months with no bounds; distant
// windows simply yield empty breakdowns.
type MonthWindow struct {
	Month time.Month
	Year  int
}

func WindowOf(t time.Time) MonthWindow {
	return MonthWindow{Month: t.Month(), Year: t.Year()}
}

func (w MonthWindow) Next() MonthWindow {
	if w.Month == time.December {
		return MonthWindow{Month: time.January, Year: w.Year + 1}
	}
	return MonthWindow{Month: w.Month + 1, Year: w.Year}
}

func (w MonthWindow) Prev() MonthWindow {
	if w.Month == time.January {
		return MonthWindow{Month: time.December, Year: w.Year - 1}
	}
	return MonthWindow{Month: w.Month - 1, Year: w.Year}
}

// Contains matches the exact calendar month and year, not a rolling window.
func (w MonthWindow) Contains(t time.Time) bool {
	return t.Month() == w.Month && t.Year() == w.Year
}

func (w MonthWindow) Valid() bool {
	return w.Month >= time.January && w.Month <= time.December && w.Year > 0
}

func (w MonthWindow) Label() string {
	return format.MonthYear(w.Month, w.Year)
}
