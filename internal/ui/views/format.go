package views

import (
	"time"

	"github.com/shopspring/decimal"
)

func formatMoney(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

func formatOptionalMoney(amount *decimal.Decimal) string {
	if amount == nil {
		return "-"
	}
	return formatMoney(*amount)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
