package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validators below match huh's Validate signature so forms can attach them
// directly to input fields.

// Required returns a validator rejecting blank input, naming the field in
// the message.
func Required(field string) func(string) error {
	return func(val string) error {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateAmount accepts a strictly positive decimal amount.
func ValidateAmount(val string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ValidateNonNegativeAmount accepts zero as well, for balances and rates.
func ValidateNonNegativeAmount(val string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount can't be negative")
	}
	return nil
}

// ValidateDate accepts YYYY-MM-DD.
func ValidateDate(val string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(val)); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// ValidateMonthDay accepts a day of month, 1 to 31.
func ValidateMonthDay(val string) error {
	day, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid number")
	}
	if day < 1 || day > 31 {
		return fmt.Errorf("day must be between 1 and 31")
	}
	return nil
}

// ValidatePositiveInt accepts a whole number greater than zero.
func ValidatePositiveInt(val string) error {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid number")
	}
	if n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
