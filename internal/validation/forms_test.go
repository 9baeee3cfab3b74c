package validation

import "testing"

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"0.01", "150", "150.50"} {
		if err := ValidateAmount(ok); err != nil {
			t.Errorf("ValidateAmount(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "0", "-5"} {
		if err := ValidateAmount(bad); err == nil {
			t.Errorf("ValidateAmount(%q) accepted", bad)
		}
	}
}

func TestValidateNonNegativeAmount(t *testing.T) {
	if err := ValidateNonNegativeAmount("0"); err != nil {
		t.Errorf("zero rejected: %v", err)
	}
	if err := ValidateNonNegativeAmount("-1"); err == nil {
		t.Error("negative accepted")
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("1990-04-17"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"", "17/04/1990", "1990-13-01"} {
		if err := ValidateDate(bad); err == nil {
			t.Errorf("ValidateDate(%q) accepted", bad)
		}
	}
}

func TestValidateMonthDay(t *testing.T) {
	for _, ok := range []string{"1", "15", "31"} {
		if err := ValidateMonthDay(ok); err != nil {
			t.Errorf("ValidateMonthDay(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"0", "32", "x"} {
		if err := ValidateMonthDay(bad); err == nil {
			t.Errorf("ValidateMonthDay(%q) accepted", bad)
		}
	}
}

func TestRequired(t *testing.T) {
	v := Required("name")
	if err := v("Ana"); err != nil {
		t.Errorf("non-blank rejected: %v", err)
	}
	if err := v("   "); err == nil {
		t.Error("blank accepted")
	}
}
