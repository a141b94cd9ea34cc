// Package format renders numbers the Danish way: "." groups thousands and
// "," separates decimals.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Danish)

// Int groups thousands, 18248 -> "18.248".
func Int(n int64) string {
	return printer.Sprintf("%d", n)
}

// Float rounds to precision decimals and groups the integer part,
// 1234.567 with precision 2 -> "1.234,57".
func Float(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}

	// вне диапазона int64 группировать нечем
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return strconv.FormatFloat(f, 'f', precision, 64)
	}

	mult := math.Pow(10, float64(precision))
	rounded := math.Round(f*mult) / mult

	if precision == 0 {
		return Int(int64(rounded))
	}

	s := strconv.FormatFloat(math.Abs(rounded), 'f', precision, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}

	sign := ""
	if rounded < 0 {
		sign = "-"
	}

	return sign + Int(n) + "," + frac
}

// Tons formats a tonnage with one decimal and the unit.
func Tons(t float64) string {
	return fmt.Sprintf("%s t CO2e", Float(t, 1))
}

// Kg formats a per-meal mass with two decimals.
func Kg(kg float64) string {
	return fmt.Sprintf("%s kg CO2e", Float(kg, 2))
}

// DKK formats an amount in whole kroner.
func DKK(amount float64) string {
	return fmt.Sprintf("%s kr.", Float(amount, 0))
}
