package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The mobile client renders pt-BR strings, so every display value leaving the
// API follows the pt-BR formatting contract: BRL currency with dot grouping
// and comma decimals, dd/mm/yy short dates, lowercase long month names.

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Currency renders a value as "R$ 1.234,56". Negative values keep the sign
// in front of the symbol, "-R$ 50,00".
func Currency(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	fixed := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), decPart)
}

// ShortDate renders "13/04/20".
func ShortDate(t time.Time) string {
	return t.Format("02/01/06")
}

// DayLongMonth renders "13 de abril".
func DayLongMonth(t time.Time) string {
	return fmt.Sprintf("%d de %s", t.Day(), MonthName(t.Month()))
}

// MonthName returns the lowercase pt-BR month name.
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// MonthYear renders "abril, 2022".
func MonthYear(month time.Month, year int) string {
	return fmt.Sprintf("%s, %d", MonthName(month), year)
}
