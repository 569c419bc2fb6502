package schema

import (
	"errors"
	"testing"

	"github.com/donaldgifford/hyprconf/internal/model"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Yes", true},
		{"on", true},
		{"ON", true},
		{"1", true},
		{"yes please", true},
		{"definitely-YES", true},
		{"  yes  ", true},
		{"false", false},
		{"no", false},
		{"off", false},
		{"0", false},
		{"2", false},
		{"", false},
		{"y", false},
		{"enabled", false},
	}

	for _, tt := range tests {
		if got := ParseBool(tt.in); got != tt.want {
			t.Errorf("ParseBool(%q): want %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{0.0117, "0.0117"},
		{0.55, "0.55"},
		{-2.5, "-2.5"},
		{1e6, "1000000"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v): want %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestParseFloatRejectsNonFinite(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf", "+inf"} {
		if _, err := ParseFloat(in); !errors.Is(err, ErrNotFinite) {
			t.Errorf("ParseFloat(%q): want ErrNotFinite, got %v", in, err)
		}
	}
}

func TestParseVec2(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    model.Vec2
		wantOK  bool
		wantErr bool
	}{
		{name: "two numbers", in: "3 -4.5", want: model.Vec2{X: 3, Y: -4.5}, wantOK: true},
		{name: "extra spaces", in: "  1\t2 ", want: model.Vec2{X: 1, Y: 2}, wantOK: true},
		{name: "one number", in: "1"},
		{name: "three numbers", in: "1 2 3"},
		{name: "empty", in: ""},
		{name: "not a number", in: "1 x", wantOK: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseVec2(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok: want %v, got %v", tt.wantOK, ok)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: want error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("value: want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseReserved(t *testing.T) {
	r, err := ParseReserved("10 0 5 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.Reserved{Top: 10, Bottom: 0, Left: 5, Right: 5}
	if r != want {
		t.Errorf("want %+v, got %+v", want, r)
	}
	if FormatReserved(r) != "10 0 5 5" {
		t.Errorf("FormatReserved: got %q", FormatReserved(r))
	}

	if _, err := ParseReserved("1 2 3"); err == nil {
		t.Error("expected error for three values")
	}
	if _, err := ParseReserved("1 2 3 x"); err == nil {
		t.Error("expected error for non-integer value")
	}
}
