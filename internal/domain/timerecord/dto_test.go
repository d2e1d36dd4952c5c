package timerecord

import (
	"errors"
	"testing"

	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{Type: "entrada", Latitude: -23.5505, Longitude: -46.6333}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	cases := []struct {
		name  string
		req   CreateRequest
		field string
	}{
		{"unknown type", CreateRequest{Type: "almoco", Latitude: 0, Longitude: 0}, "type"},
		{"latitude out of range", CreateRequest{Type: "saida", Latitude: 91, Longitude: 0}, "latitude"},
		{"longitude out of range", CreateRequest{Type: "saida", Latitude: 0, Longitude: -181}, "longitude"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			if _, ok := errs.ToMap()[c.field]; !ok {
				t.Errorf("expected error on field %q, got %v", c.field, errs.ToMap())
			}
		})
	}
}
