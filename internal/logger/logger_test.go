package logger

import "testing"

func TestSanitizePayloadMasksCredentialFields(t *testing.T) {
	payload := map[string]any{
		"nome":      "Ana",
		"senhaHash": "super-secret",
		"cartao": map[string]any{
			"cvvHash": "123",
			"numero":  "4111",
		},
	}

	out, ok := SanitizePayload(payload).(map[string]any)
	if !ok {
		t.Fatalf("SanitizePayload returned %T, want map", out)
	}

	if out["senhaHash"] != "******" {
		t.Errorf("senhaHash = %v, want masked", out["senhaHash"])
	}
	if out["nome"] != "Ana" {
		t.Errorf("nome = %v, want untouched", out["nome"])
	}

	card := out["cartao"].(map[string]any)
	if card["cvvHash"] != "******" {
		t.Errorf("nested cvvHash = %v, want masked", card["cvvHash"])
	}
	if card["numero"] != "4111" {
		t.Errorf("nested numero = %v, want untouched", card["numero"])
	}
}
