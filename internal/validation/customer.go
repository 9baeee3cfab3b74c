package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitRegex = regexp.MustCompile(`\D`)
)

// OnlyDigits strips everything that is not a digit, the same normalization
// applied to CPF and phone inputs before they go on the wire.
func OnlyDigits(s string) string {
	return digitRegex.ReplaceAllString(s, "")
}

// ValidateCPF checks the full CPF rules: 11 digits, not a repeated-digit
// sequence, and both verification digits correct.
func ValidateCPF(val string) error {
	cpf := OnlyDigits(val)
	if len(cpf) != 11 {
		return fmt.Errorf("CPF must have 11 digits")
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return fmt.Errorf("invalid CPF")
	}

	if cpfCheckDigit(cpf, 9) != int(cpf[9]-'0') || cpfCheckDigit(cpf, 10) != int(cpf[10]-'0') {
		return fmt.Errorf("invalid CPF check digits")
	}

	return nil
}

func cpfCheckDigit(cpf string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(cpf[i]-'0') * (length + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

func ValidateEmail(val string) error {
	if !emailRegex.MatchString(strings.TrimSpace(val)) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// ValidatePhone accepts Brazilian numbers: area code plus 8 or 9 digits.
func ValidatePhone(val string) error {
	digits := OnlyDigits(val)
	if len(digits) < 10 || len(digits) > 11 {
		return fmt.Errorf("phone must have 10 or 11 digits including area code")
	}
	return nil
}
