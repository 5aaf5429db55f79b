package coord

import (
	"errors"
	"testing"
)

func TestParseDatum(t *testing.T) {
	cases := map[string]Datum{
		"wgs84": WGS84, "GPS": WGS84, " WGS ": WGS84,
		"gcj02": GCJ02, "Mars": GCJ02, "amap": GCJ02,
		"bd09": BD09, "BAIDU": BD09, "bd": BD09,
	}
	for s, want := range cases {
		got, err := ParseDatum(s)
		if err != nil || got != want {
			t.Errorf("ParseDatum(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseDatum("cgcs2000"); !errors.Is(err, ErrUnknownDatum) {
		t.Errorf("want ErrUnknownDatum, got %v", err)
	}
}

func TestConvert(t *testing.T) {
	p := &Point{Lng: 116.404, Lat: 39.915}
	for _, from := range []Datum{WGS84, GCJ02, BD09} {
		if q := Convert(p, from, from); !q.Equals(p) || q == p {
			t.Errorf("Convert %v->%v should copy", from, from)
		}
	}
	checks := []struct {
		from, to Datum
		f        func(float64, float64) (float64, float64)
	}{
		{WGS84, GCJ02, WGS2GCJ},
		{WGS84, BD09, WGS2BD},
		{GCJ02, WGS84, GCJ2WGS},
		{GCJ02, BD09, GCJ2BD},
		{BD09, WGS84, BD2WGS},
		{BD09, GCJ02, BD2GCJ},
	}
	for _, c := range checks {
		lng, lat := c.f(p.Lng, p.Lat)
		q := Convert(p, c.from, c.to)
		if q.Lng != lng || q.Lat != lat {
			t.Errorf("Convert %v->%v = %s", c.from, c.to, q.String())
		}
	}
	lng, lat := ConvertLngLat(1, 2, Datum(9), WGS84)
	if lng != 1 || lat != 2 {
		t.Error("unknown datum should pass through")
	}
}

func TestConvertSlice(t *testing.T) {
	line := []*Point{{116.404, 39.915}, {121.4737, 31.2304}}
	out := ConvertSlice(line, WGS84, GCJ02)
	if len(out) != 2 {
		t.Fatalf("len %d", len(out))
	}
	if !out[1].Equals(WGS84toGCJ02(line[1])) {
		t.Errorf("got %s", out[1].String())
	}
}

func TestOffset(t *testing.T) {
	d := Offset(&Point{Lng: 116.404, Lat: 39.915}, WGS84, GCJ02)
	if d < 300 || d > 900 {
		t.Errorf("beijing offset %.1fm", d)
	}
	if d := Offset(&Point{Lng: -0.1, Lat: 51.5}, WGS84, GCJ02); d != 0 {
		t.Errorf("london offset %.3fm", d)
	}
}

func TestDatumString(t *testing.T) {
	if WGS84.String() != "WGS84" || GCJ02.String() != "GCJ02" || BD09.String() != "BD09" || Datum(7).String() != "unknown" {
		t.Error("datum names")
	}
}
