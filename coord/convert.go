package coord

import (
	"errors"
	"fmt"
	"strings"
)

// Datum 坐标系
type Datum byte

const (
	// WGS84 gps坐标系
	WGS84 Datum = iota
	// GCJ02 火星坐标系，高德/腾讯
	GCJ02
	// BD09 百度坐标系
	BD09
)

// ErrUnknownDatum 无法识别的坐标系名称
var ErrUnknownDatum = errors.New("unknown datum")

func (d Datum) String() string {
	switch d {
	case WGS84:
		return "WGS84"
	case GCJ02:
		return "GCJ02"
	case BD09:
		return "BD09"
	}
	return "unknown"
}

// ParseDatum 解析坐标系名称，不区分大小写
func ParseDatum(s string) (Datum, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wgs84", "wgs", "gps", "wgs-84":
		return WGS84, nil
	case "gcj02", "gcj", "mars", "amap", "gcj-02":
		return GCJ02, nil
	case "bd09", "bd", "baidu", "bd-09":
		return BD09, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownDatum, s)
}

// Convert 坐标系转换，from和to相同时返回副本
func Convert(p *Point, from, to Datum) *Point {
	lng, lat := ConvertLngLat(p.Lng, p.Lat, from, to)
	return &Point{Lng: lng, Lat: lat}
}

// ConvertLngLat 坐标系转换，未知坐标系原样返回
func ConvertLngLat(lng, lat float64, from, to Datum) (float64, float64) {
	switch {
	case from == to:
		return lng, lat
	case from == WGS84 && to == GCJ02:
		return WGS2GCJ(lng, lat)
	case from == WGS84 && to == BD09:
		return WGS2BD(lng, lat)
	case from == GCJ02 && to == WGS84:
		return GCJ2WGS(lng, lat)
	case from == GCJ02 && to == BD09:
		return GCJ2BD(lng, lat)
	case from == BD09 && to == WGS84:
		return BD2WGS(lng, lat)
	case from == BD09 && to == GCJ02:
		return BD2GCJ(lng, lat)
	}
	return lng, lat
}

// ConvertSlice 批量转换，用于线和面
func ConvertSlice(pts []*Point, from, to Datum) []*Point {
	out := make([]*Point, len(pts))
	for k, v := range pts {
		out[k] = Convert(v, from, to)
	}
	return out
}

// Offset 坐标系转换前后两点的距离(米)
func Offset(p *Point, from, to Datum) float64 {
	return Distance(p, Convert(p, from, to))
}
