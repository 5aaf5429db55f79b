package geodatum

import (
	"strings"
	"testing"
)

func TestString2Float64(t *testing.T) {
	cases := map[string]float64{
		"116.404":   116.404,
		" -0.1 ":    -0.1,
		"abc":       0,
		"":          0,
		"1e-3":      0.001,
		"39.915000": 39.915,
	}
	for s, want := range cases {
		if got := String2Float64(s); got != want {
			t.Errorf("String2Float64(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestString2Int64(t *testing.T) {
	if v := String2Int64("11640399", 10); v != 11640399 {
		t.Fatalf("got %d", v)
	}
	if v := String2Int64("-10000", 10); v != -10000 {
		t.Fatalf("got %d", v)
	}
	if v := String2Int64("1.5", 10); v != 0 {
		t.Fatalf("got %d", v)
	}
}

func TestVersionInfo(t *testing.T) {
	s := VersionInfo("coordconv", "1.0.0", "go1.25", "2026-10-19", "linux/amd64", "xy")
	for _, want := range []string{"coordconv", "Version:\t1.0.0", "Code by:\txy"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in %q", want, s)
		}
	}
}
