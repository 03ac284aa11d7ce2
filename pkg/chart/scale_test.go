package chart

import (
	"math"
	"testing"
)

func TestScalePixelMapping(t *testing.T) {
	s := NewScale(0, 100, 100, 900)

	// Domain is padded, so the extremes land inside the pixel range.
	if px := s.Pixel(0); px <= 100 || px >= 900 {
		t.Errorf("Pixel(0) = %v, want inside (100, 900)", px)
	}
	if px := s.Pixel(100); px <= 100 || px >= 900 {
		t.Errorf("Pixel(100) = %v, want inside (100, 900)", px)
	}

	mid := s.Pixel(50)
	if math.Abs(mid-500) > 1e-9 {
		t.Errorf("Pixel(50) = %v, want 500", mid)
	}
}

func TestScaleInverted(t *testing.T) {
	// y axes map low data values to high pixel rows.
	s := NewScale(0, 10, 800, 100)
	if s.Pixel(0) <= s.Pixel(10) {
		t.Errorf("inverted scale: Pixel(0)=%v should exceed Pixel(10)=%v", s.Pixel(0), s.Pixel(10))
	}
}

func TestScaleRoundTrip(t *testing.T) {
	s := NewScale(-5, 37, 90, 1160)
	for _, v := range []float64{-5, 0, 17.3, 37} {
		got := s.Value(s.Pixel(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip %v -> %v", v, got)
		}
	}
}

func TestScaleDegenerateDomain(t *testing.T) {
	s := NewScale(42, 42, 0, 100)
	if s.DomainMin >= s.DomainMax {
		t.Fatalf("degenerate domain not widened: %v..%v", s.DomainMin, s.DomainMax)
	}
	px := s.Pixel(42)
	if math.Abs(px-50) > 1e-9 {
		t.Errorf("Pixel(42) = %v, want 50 (domain center)", px)
	}
}
