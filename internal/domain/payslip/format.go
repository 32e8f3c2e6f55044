package payslip

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatRWF renders an amount as Rwandan francs with thousands grouping,
// e.g. "RWF 128,000.00".
func FormatRWF(amount float64) string {
	return currencyPrinter.Sprintf("RWF %.2f", amount)
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return "UNKNOWN"
	}
	return strings.ToUpper(time.Month(month).String())
}
