package vmath

import (
	"math"
	"testing"
)

func TestFromFloatTruncates(t *testing.T) {
	tests := []struct {
		in   float64
		want Fix32
	}{
		{0.1, 102},
		{0.3, 307},
		{0.32, 327},
		{1, 1024},
		{7.8, 7987},
		{-0.1, -102},
		{-8, -8192},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); got != tt.want {
			t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToIntFloors(t *testing.T) {
	if got := ToInt(FromFloat(2.9)); got != 2 {
		t.Errorf("ToInt(2.9) = %d, want 2", got)
	}
	// Arithmetic shift rounds toward negative infinity
	if got := ToInt(FromFloat(-0.5)); got != -1 {
		t.Errorf("ToInt(-0.5) = %d, want -1", got)
	}
	if got := FromInt(-8).Int(); got != -8 {
		t.Errorf("FromInt(-8).Int() = %d, want -8", got)
	}
}

func TestShiftMatchesInt32(t *testing.T) {
	values := []int32{0, 1, -1, 102, -102, 8192, -8192, math.MaxInt32, math.MinInt32}
	for _, v := range values {
		f := Fix32(v)
		for s := 0; s < 8; s++ {
			if int32(f>>s) != v>>s {
				t.Errorf("%d >> %d = %d, want %d", v, s, int32(f>>s), v>>s)
			}
		}
	}
}

func TestAdditionWraps(t *testing.T) {
	f := Fix32(math.MaxInt32)
	f += 1
	if int32(f) != math.MinInt32 {
		t.Errorf("MaxInt32+1 = %d, want wrap to MinInt32", int32(f))
	}
}

func TestAbsSignClamp(t *testing.T) {
	if Abs(-One) != One || Abs(One) != One {
		t.Error("Abs mismatch")
	}
	if Sign(-5) != -One || Sign(0) != 0 || Sign(5) != One {
		t.Error("Sign mismatch")
	}
	if Clamp(FromInt(10), -One, One) != One {
		t.Error("Clamp high mismatch")
	}
	if Clamp(FromInt(-10), -One, One) != -One {
		t.Error("Clamp low mismatch")
	}
}

func TestMulDiv(t *testing.T) {
	if got := Mul(FromInt(3), FromFloat(0.5)); got != FromFloat(1.5) {
		t.Errorf("3*0.5 = %v, want 1.5", got.Float())
	}
	if got := Div(FromInt(3), FromInt(2)); got != FromFloat(1.5) {
		t.Errorf("3/2 = %v, want 1.5", got.Float())
	}
	if Div(One, 0) != 0 {
		t.Error("division by zero should yield 0")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	r := NewFastRand(0)
	for i := 0; i < 100; i++ {
		v := r.Range(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("Range out of bounds: %d", v)
		}
	}
}
