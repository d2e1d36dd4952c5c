package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// Same point
	if d := CalculateHaversineDistance(-23.5505, -46.6333, -23.5505, -46.6333); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	// Paulista to Praça da Sé, roughly 3 km
	d := CalculateHaversineDistance(-23.5614, -46.6559, -23.5503, -46.6339)
	if math.Abs(d-2560) > 200 {
		t.Errorf("distance = %f, want about 2560m", d)
	}

	// One degree of latitude is about 111 km
	d = CalculateHaversineDistance(0, 0, 1, 0)
	if math.Abs(d-111195) > 500 {
		t.Errorf("one degree latitude = %f, want about 111195m", d)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Recursos Humanos", "recursoshumanos"},
		{"Gestão", "gestao"},
		{"Tecnologia da Informação", "tecnologiadainformacao"},
		{"Operações", "operacoes"},
		{"Vendas 2", "vendas2"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.input); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := GenerateTempPassword(8)
		if err != nil {
			t.Fatalf("GenerateTempPassword: %v", err)
		}
		if len(pw) != 8 {
			t.Fatalf("len = %d, want 8", len(pw))
		}
		for _, r := range pw {
			if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Fatalf("unexpected character %q in %q", r, pw)
			}
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Error("expected distinct passwords across generations")
	}
}
