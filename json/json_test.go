package json

import "testing"

type lngLat struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

func TestMarshal(t *testing.T) {
	s, err := MarshalToString(&lngLat{Lng: 116.404, Lat: 39.915})
	if err != nil {
		t.Fatal(err)
	}
	if s != `{"lng":116.404,"lat":39.915}` {
		t.Errorf("got %s", s)
	}
	var p lngLat
	if err := UnmarshalFromString(`{"lat":31.2304,"lng":121.4737}`, &p); err != nil {
		t.Fatal(err)
	}
	if p.Lng != 121.4737 || p.Lat != 31.2304 {
		t.Errorf("got %+v", p)
	}
	if !Valid(Bytes(s)) || Valid([]byte("{")) {
		t.Error("Valid")
	}
}

func TestBytesString(t *testing.T) {
	if String(Bytes("11640399, 3991499")) != "11640399, 3991499" {
		t.Error("round trip")
	}
}
