package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{"12345678901", "123.456.789-01"}
	invalid := []string{"1234567890", "123456789012", "12345678a01", ""}
	for _, cpf := range valid {
		if !IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = false, want true", cpf)
		}
	}
	for _, cpf := range invalid {
		if IsValidCPF(cpf) {
			t.Errorf("IsValidCPF(%q) = true, want false", cpf)
		}
	}
}

func TestIsValidCNPJ(t *testing.T) {
	valid := []string{"12345678000199", "12.345.678/0001-99"}
	invalid := []string{"1234567800019", "123456780001990", ""}
	for _, cnpj := range valid {
		if !IsValidCNPJ(cnpj) {
			t.Errorf("IsValidCNPJ(%q) = false, want true", cnpj)
		}
	}
	for _, cnpj := range invalid {
		if IsValidCNPJ(cnpj) {
			t.Errorf("IsValidCNPJ(%q) = true, want false", cnpj)
		}
	}
}

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF("123.456.789-01"); got != "12345678901" {
		t.Errorf("NormalizeCPF = %q, want 12345678901", got)
	}
}

func TestNormalizeCNPJ(t *testing.T) {
	if got := NormalizeCNPJ("12.345.678/0001-99"); got != "12345678000199" {
		t.Errorf("NormalizeCNPJ = %q, want 12345678000199", got)
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-10"); !ok {
		t.Error("IsValidDate(2025-03-10) = false, want true")
	}
	for _, bad := range []string{"10/03/2025", "2025-13-01", "2025-03-40", "yesterday", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"11987654321", "+5511987654321", "(11) 98765-4321"}
	invalid := []string{"123", "abcdefghij", "123456789012345"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["name"] != "name is required" || m["email"] != "invalid email format" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "name: name is required; email: invalid email format" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
