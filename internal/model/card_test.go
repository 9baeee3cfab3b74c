package model

import (
	"strings"
	"testing"
)

func TestGenerateCardNumber(t *testing.T) {
	credit := GenerateCardNumber(CardCredit)
	if len(credit) != 16 {
		t.Fatalf("credit number length = %d, want 16", len(credit))
	}
	if !strings.HasPrefix(credit, "4") {
		t.Errorf("credit number %q should start with 4", credit)
	}

	debit := GenerateCardNumber(CardDebit)
	if len(debit) != 16 {
		t.Fatalf("debit number length = %d, want 16", len(debit))
	}
	if !strings.HasPrefix(debit, "5") {
		t.Errorf("debit number %q should start with 5", debit)
	}

	for _, r := range credit + debit {
		if r < '0' || r > '9' {
			t.Fatalf("generated number contains non-digit %q", r)
		}
	}
}

func TestGenerateCVV(t *testing.T) {
	for i := 0; i < 50; i++ {
		cvv := GenerateCVV()
		if len(cvv) != 3 {
			t.Fatalf("cvv %q length = %d, want 3", cvv, len(cvv))
		}
		if cvv[0] == '0' {
			t.Fatalf("cvv %q should not start with 0", cvv)
		}
	}
}

func TestMaskedNumber(t *testing.T) {
	c := Card{Number: "4111222233334444"}
	if got := c.MaskedNumber(); got != "**** **** **** 4444" {
		t.Errorf("MaskedNumber() = %q", got)
	}

	short := Card{Number: "123"}
	if got := short.MaskedNumber(); got != "123" {
		t.Errorf("MaskedNumber() on short number = %q, want unchanged", got)
	}
}

func TestFormattedCPF(t *testing.T) {
	c := Customer{CPF: "52998224725"}
	if got := c.FormattedCPF(); got != "529.982.247-25" {
		t.Errorf("FormattedCPF() = %q", got)
	}

	odd := Customer{CPF: "12345"}
	if got := odd.FormattedCPF(); got != "12345" {
		t.Errorf("FormattedCPF() on short CPF = %q, want unchanged", got)
	}
}
