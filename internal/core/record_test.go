package core

import (
	"errors"
	"testing"
)

func TestRecordValidate(t *testing.T) {
	good := Record{ID: 1, Date: "2024-05-01", Name: "Milk", TotalPrice: 15000}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		rec  Record
		want error
	}{
		{"empty name", Record{Date: "2024-05-01", Name: "  ", TotalPrice: 1}, ErrEmptyName},
		{"negative price", Record{Date: "2024-05-01", Name: "a", TotalPrice: -1}, ErrNegativePrice},
		{"negative quantity", Record{Date: "2024-05-01", Name: "a", TotalPrice: 1, Quantity: -2}, ErrNegativeQuantity},
		{"bad date", Record{Date: "01-05-2024", Name: "a", TotalPrice: 1}, ErrInvalidDate},
		{"impossible date", Record{Date: "2024-13-40", Name: "a", TotalPrice: 1}, ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.rec.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRecordUnitPrice(t *testing.T) {
	if _, ok := (Record{TotalPrice: 15000}).UnitPrice(); ok {
		t.Fatal("unit price should be undefined without quantity")
	}
	up, ok := (Record{TotalPrice: 15000, Quantity: 4}).UnitPrice()
	if !ok || up != 3750 {
		t.Fatalf("got (%d,%v), want (3750,true)", up, ok)
	}
	// rounds down, like the entry form display
	up, _ = (Record{TotalPrice: 10000, Quantity: 3}).UnitPrice()
	if up != 3333 {
		t.Fatalf("got %d, want 3333", up)
	}
}

func TestRecordWithDefaults(t *testing.T) {
	r := Record{Name: "Eggs", TotalPrice: 20000, Quantity: 10}.WithDefaults()
	if r.Unit != DefaultUnit {
		t.Fatalf("got unit %q, want %q", r.Unit, DefaultUnit)
	}
	r = Record{Name: "Eggs", TotalPrice: 20000}.WithDefaults()
	if r.Unit != "" {
		t.Fatalf("unit should stay empty without quantity, got %q", r.Unit)
	}
	r = Record{Name: "Rice", TotalPrice: 50000, Quantity: 5, Unit: "kg"}.WithDefaults()
	if r.Unit != "kg" {
		t.Fatalf("explicit unit overwritten: %q", r.Unit)
	}
}
