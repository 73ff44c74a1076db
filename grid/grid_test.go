package grid

import (
	"testing"
)

func TestNewInvalidShape(t *testing.T) {
	tests := []struct {
		name    string
		h, w, c int
	}{
		{"zero height", 0, 4, 1},
		{"zero width", 4, 0, 1},
		{"zero channels", 4, 4, 0},
		{"negative height", -1, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.h, tt.w, tt.c); err == nil {
				t.Errorf("New(%d, %d, %d) should fail", tt.h, tt.w, tt.c)
			}
		})
	}
}

func TestValidateMismatchedData(t *testing.T) {
	g := &Grid{H: 2, W: 2, C: 1, Data: make([]float32, 3)}
	if err := g.Validate(); err == nil {
		t.Error("mismatched data length should fail validation")
	}
}

func TestAtSetWraps(t *testing.T) {
	g := MustNew(4, 4, 1)
	g.Set(1, 2, 0, .75)

	tests := []struct {
		name string
		y, x int
	}{
		{"direct", 1, 2},
		{"wrap positive", 5, 6},
		{"wrap negative", -3, -2},
		{"wrap far", 9, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.y, tt.x, 0); got != .75 {
				t.Errorf("At(%d, %d) = %v, want 0.75", tt.y, tt.x, got)
			}
		})
	}
}

func TestWrapInt(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{-5, 4, 3},
		{9, 4, 1},
	}

	for _, tt := range tests {
		if got := WrapInt(tt.i, tt.n); got != tt.want {
			t.Errorf("WrapInt(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestWrapFloat(t *testing.T) {
	tests := []struct {
		v       float32
		n       int
		wantMin float32
		wantMax float32
	}{
		{3.5, 4, 3.5, 3.5},
		{4.5, 4, 0.5, 0.5},
		{-0.5, 4, 3.5, 3.5},
		{8.25, 4, 0.25, 0.25},
	}

	for _, tt := range tests {
		got := WrapFloat(tt.v, tt.n)
		if got < tt.wantMin-1e-5 || got > tt.wantMax+1e-5 {
			t.Errorf("WrapFloat(%v, %d) = %v, want %v", tt.v, tt.n, got, tt.wantMin)
		}
		if got < 0 || got >= float32(tt.n) {
			t.Errorf("WrapFloat(%v, %d) = %v, out of [0,%d)", tt.v, tt.n, got, tt.n)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := MustNew(2, 2, 1)
	g.Set(0, 0, 0, 1)
	c := g.Clone()
	c.Set(0, 0, 0, 2)
	if g.At(0, 0, 0) != 1 {
		t.Error("Clone should not share backing storage")
	}
}
