package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "R$ 0,00"},
		{"small", 50, "R$ 50,00"},
		{"cents", 40.5, "R$ 40,50"},
		{"thousands", 12000, "R$ 12.000,00"},
		{"millions", 1000400, "R$ 1.000.400,00"},
		{"negative", -50, "-R$ 50,00"},
		{"negative thousands", -17400.25, "-R$ 17.400,25"},
		{"three digits", 999.99, "R$ 999,99"},
		{"four digits", 1000, "R$ 1.000,00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Currency(tc.value))
		})
	}
}

func TestShortDate(t *testing.T) {
	date := time.Date(2020, time.April, 13, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "13/04/20", ShortDate(date))
}

func TestDayLongMonth(t *testing.T) {
	assert.Equal(t, "13 de abril", DayLongMonth(time.Date(2022, time.April, 13, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 de março", DayLongMonth(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de dezembro", DayLongMonth(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "abril, 2022", MonthYear(time.April, 2022))
	assert.Equal(t, "janeiro, 1999", MonthYear(time.January, 1999))
}
