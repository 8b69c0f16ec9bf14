package otpcode

import (
	"errors"
	"testing"
)

func TestNumericGenerate(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		gen := NewNumeric(length)

		for range 50 {
			code, err := gen.Generate()
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(code) != length {
				t.Fatalf("code %q has length %d, want %d", code, len(code), length)
			}
			for _, c := range code {
				if c < '0' || c > '9' {
					t.Fatalf("code %q contains non-digit %q", code, c)
				}
			}
		}
	}
}

func TestNewNumericInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, 19} {
		gen := NewNumeric(length)

		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("NewNumeric(%d) produced %q, want 6-digit fallback", length, code)
		}
	}
}

func TestFunc(t *testing.T) {
	gen := Func(func() (string, error) { return "123456", nil })

	code, err := gen.Generate()
	if err != nil || code != "123456" {
		t.Fatalf("Generate() = %q, %v", code, err)
	}

	wantErr := errors.New("entropy exhausted")
	gen = Func(func() (string, error) { return "", wantErr })

	if _, err := gen.Generate(); !errors.Is(err, wantErr) {
		t.Fatalf("Generate() error = %v, want %v", err, wantErr)
	}
}
