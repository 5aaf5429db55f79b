package coord

import (
	"math"
	"math/rand"
	"testing"
)

func TestLngLat2NDS(t *testing.T) {
	cases := []struct {
		lng, lat float64
		want     NDSPoint
	}{
		{0, 0, NDSPoint{0, 0}},
		{116.404, 39.915, NDSPoint{11640399, 3991499}},
		{-0.1, 51.5, NDSPoint{-10000, 5149999}},
		{-122.4194, -37.7749, NDSPoint{-12241940, -3777490}},
		{180, 90, NDSPoint{18000000, 9000000}},
		{-180, -90, NDSPoint{-18000000, -9000000}},
		{1e-9, -1e-9, NDSPoint{0, 0}},
	}
	for _, c := range cases {
		if got := LngLat2NDS(c.lng, c.lat); got != c.want {
			t.Errorf("LngLat2NDS(%v, %v) = %v, want %v", c.lng, c.lat, got, c.want)
		}
	}
}

func TestNDS2LngLat(t *testing.T) {
	cases := []struct {
		x, y     int64
		lng, lat float64
	}{
		{0, 0, 0, 0},
		{11640399, 3991499, 116.40398992225528, 39.91498994641006},
		{-10000, 5149999, -0.09999996051192284, 51.49998997338116},
		{18000000, 9000000, 180, 90},
	}
	for _, c := range cases {
		lng, lat := NDS2LngLat(c.x, c.y)
		if math.Abs(lng-c.lng) > 1e-12 || math.Abs(lat-c.lat) > 1e-12 {
			t.Errorf("NDS2LngLat(%d, %d) = %.14f %.14f, want %.14f %.14f", c.x, c.y, lng, lat, c.lng, c.lat)
		}
	}
}

func TestNDSRoundTrip(t *testing.T) {
	// 二次缩放后的网格步长约为1e-5度，往返误差不超过一个步长(含截断)
	const bound = 1.1e-5
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		lng := r.Float64()*360 - 180
		lat := r.Float64()*180 - 90
		p := (&Point{Lng: lng, Lat: lat}).ToNDS().Point()
		if math.Abs(p.Lng-lng) > bound || math.Abs(p.Lat-lat) > bound {
			t.Fatalf("round trip %v %v -> %v", lng, lat, p)
		}
	}
}

func TestNDSString(t *testing.T) {
	if s := LngLat2NDS(116.404, 39.915).String(); s != "11640399, 3991499" {
		t.Errorf("got %q", s)
	}
}
