package validation

import "testing"

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name    string
		cpf     string
		wantErr bool
	}{
		{"valid", "52998224725", false},
		{"valid with punctuation", "529.982.247-25", false},
		{"wrong first check digit", "52998224735", true},
		{"wrong second check digit", "52998224724", true},
		{"too short", "5299822472", true},
		{"repeated digits", "11111111111", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCPF(tt.cpf)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCPF(%q) error = %v, wantErr %v", tt.cpf, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("ana@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "ana", "ana@", "@example.com", "a b@c.d"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("ValidateEmail(%q) accepted", bad)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	for _, ok := range []string{"(11) 99999-9999", "1133334444"} {
		if err := ValidatePhone(ok); err != nil {
			t.Errorf("ValidatePhone(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "12345", "123456789012"} {
		if err := ValidatePhone(bad); err == nil {
			t.Errorf("ValidatePhone(%q) accepted", bad)
		}
	}
}

func TestOnlyDigits(t *testing.T) {
	if got := OnlyDigits("529.982.247-25"); got != "52998224725" {
		t.Errorf("OnlyDigits = %q", got)
	}
}
