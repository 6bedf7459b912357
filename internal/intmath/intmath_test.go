package intmath

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{a: 0, b: 5, want: 0},
		{a: 5, b: 0, want: 0},
		{a: 10, b: 8, want: 80},
		{a: 1 << 31, b: 1 << 32, want: 1 << 63},
		{a: math.MaxUint64, b: 1, want: math.MaxUint64},
	}

	rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is valuable for tests
	for range 50 {
		l := uint64(rng.Uint32())
		r := uint64(rng.Uint32())
		tests = append(tests, struct{ a, b, want uint64 }{a: l, b: r, want: l * r})
	}

	for _, tt := range tests {
		if got, err := Mul(tt.a, tt.b); err != nil || got != tt.want {
			t.Errorf("Mul[%T](%[1]d, %d) got (%d, %v); want (%d, nil)", tt.a, tt.b, got, err, tt.want)
		}
	}
}

func TestMulOverflow(t *testing.T) {
	tests := []struct {
		a, b uint64
	}{
		{a: math.MaxUint64, b: 2},
		{a: 1 << 32, b: 1 << 32},
		{a: math.MaxUint32 + 1, b: math.MaxUint32 + 1},
	}
	for _, tt := range tests {
		if _, err := Mul(tt.a, tt.b); !errors.Is(err, ErrOverflow) {
			t.Errorf("Mul[%T](%[1]d, %d) got error %v; want %v", tt.a, tt.b, err, ErrOverflow)
		}
	}

	if _, err := Mul[uint8](16, 16); !errors.Is(err, ErrOverflow) {
		t.Errorf("Mul[uint8](16, 16) got error %v; want %v", err, ErrOverflow)
	}
	if got, err := Mul[uint8](15, 17); err != nil || got != 255 {
		t.Errorf("Mul[uint8](15, 17) got (%d, %v); want (255, nil)", got, err)
	}
}

func TestScaleFloor(t *testing.T) {
	const phi = 1.6180339887498948482

	tests := []struct {
		n    int
		f    float64
		want int
	}{
		{n: 0, f: phi, want: 0},
		{n: 1, f: phi, want: 1},
		{n: 10, f: phi, want: 16},
		{n: 16, f: phi, want: 25},
		{n: 25, f: phi, want: 40},
		{n: 40, f: phi, want: 64},
		{n: 7, f: 1, want: 7},
		{n: 7, f: 0.5, want: 3},
	}

	for _, tt := range tests {
		if got, err := ScaleFloor(tt.n, tt.f); err != nil || got != tt.want {
			t.Errorf("ScaleFloor(%d, %v) got (%d, %v); want (%d, nil)", tt.n, tt.f, got, err, tt.want)
		}
	}

	for _, tt := range []struct {
		n int
		f float64
	}{
		{n: math.MaxInt, f: phi},
		{n: math.MaxInt / 2, f: 3},
		{n: -1, f: phi},
		{n: 1, f: math.NaN()},
	} {
		if _, err := ScaleFloor(tt.n, tt.f); !errors.Is(err, ErrOverflow) {
			t.Errorf("ScaleFloor(%d, %v) got error %v; want %v", tt.n, tt.f, err, ErrOverflow)
		}
	}
}
