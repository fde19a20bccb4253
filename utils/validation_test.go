package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@tattooapp.com", "a.b@c.co"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "user@", "@host.com", "a b@c.co"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+90 555 123 45 67", "5551234567", "+1 (415) 555-0123"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Fatalf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "abc", "0123", "+"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Fatalf("expected %q to be invalid", phone)
		}
	}
}
