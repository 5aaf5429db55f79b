// Package coord 坐标相关: WGS84/GCJ02/BD09互转，NDS网格编码，WKT文本以及简单的空间判断
package coord

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/xyzj/geodatum"
)

// earthRadius 地球平均半径(米)
const earthRadius = 6371000.0

var georep = strings.NewReplacer("(", "", ")", "", ", ", ",", "POINT", "", "POLYGON", "", "LINESTRING", "", "POINT ", "", "POLYGON ", "", "LINESTRING ", "") // 经纬度字符串处理替换器

// Point point struct
type Point struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// NewPoint make a point
func NewPoint(lng, lat float64) *Point {
	return &Point{Lng: lng, Lat: lat}
}

// String return lng, lat
func (p *Point) String() string {
	return fmt.Sprintf("%.12f %.12f", p.Lng, p.Lat)
}

// GeoText return mysql geotext
func (p *Point) GeoText() string {
	return fmt.Sprintf("POINT (%.12f %.12f)", p.Lng, p.Lat)
}

// Value return the lon and lat value
func (p *Point) Value() (float64, float64) {
	return p.Lng, p.Lat
}

// Equals this point is equivalent to the other point
func (p *Point) Equals(other *Point) bool {
	return p.Lng == other.Lng && p.Lat == other.Lat
}

// InChina 是否在国内偏移范围内
func (p *Point) InChina() bool {
	return InChina(p.Lng, p.Lat)
}

// Round round this point to l decimals
func (p *Point) Round(l int) *Point {
	a := math.Pow10(l)
	return &Point{
		Lng: math.Round(p.Lng*a) / a,
		Lat: math.Round(p.Lat*a) / a,
	}
}

// RoundString limit number after dot
func (p *Point) RoundString(l int) string {
	if l < 0 {
		l = 12
	}
	return fmt.Sprintf("%.*f %.*f", l, p.Lng, l, p.Lat)
}

// InPolygonRayCasting determines whether the point p lies inside the planar polygon poly
// using ray casting. The polygon must have at least 3 vertices.
func (p *Point) InPolygonRayCasting(poly []*Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	var inside bool
	j := n - 1
	for i := 0; i < n; i++ {
		pi := poly[i]
		pj := poly[j]
		intersect := ((pi.Lat > p.Lat) != (pj.Lat > p.Lat)) &&
			(p.Lng < (pj.Lng-pi.Lng)*(p.Lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lng)
		if intersect {
			inside = !inside
		}
		j = i
	}
	return inside
}

// InPolygon determines whether the point p lies inside the given polygon on a sphere.
//
// The polygon must be simple and have at least 3 distinct points, a closing point equal
// to the first one is ignored. Orientation does not matter, the smaller of the two
// regions bounded by the ring is used.
func (p *Point) InPolygon(polygon []*Point) bool {
	n := len(polygon)
	if n > 1 && polygon[0].Equals(polygon[n-1]) {
		n--
	}
	if n < 3 {
		return false
	}
	vs := make([]s2.Point, n)
	for i := 0; i < n; i++ {
		vs[i] = polygon[i].s2Point()
	}
	loop := s2.LoopFromPoints(vs)
	loop.Normalize()
	return loop.ContainsPoint(p.s2Point())
}

// InCircle reports whether p lies within radius metres of center.
func (p *Point) InCircle(center *Point, radius float64) bool {
	return Distance(p, center) <= radius
}

// InLineBuffer reports whether p lies within buffer metres of any segment of line.
func (p *Point) InLineBuffer(line []*Point, buffer float64) bool {
	for i := 0; i < len(line)-1; i++ {
		if pointToSegmentDistance(p, line[i], line[i+1]) <= buffer {
			return true
		}
	}
	return false
}

// Text2Geo 解析POINT/LINESTRING/POLYGON文本，无法解析的坐标对会被跳过
func Text2Geo(s string) []*Point {
	geostr := strings.Split(georep.Replace(s), ",")
	gp := make([]*Point, 0, len(geostr))
	for _, v := range geostr {
		vv := strings.Fields(v)
		if len(vv) < 2 {
			continue
		}
		gp = append(gp, &Point{
			Lng: geodatum.String2Float64(vv[0]),
			Lat: geodatum.String2Float64(vv[1]),
		})
	}
	return gp
}

// Geo2Text 点集转POINT/LINESTRING/POLYGON文本，首尾相同视为面
func Geo2Text(gp []*Point) string {
	geostr := "POINT(0 0)"
	switch len(gp) {
	case 0: // 没有位置
	case 1: // 点
		geostr = gp[0].GeoText()
	default: // 线或者面
		pts := make([]string, len(gp))
		for k, v := range gp {
			pts[k] = v.String()
		}
		if pts[0] == pts[len(gp)-1] {
			geostr = fmt.Sprintf("POLYGON((%s))", strings.Join(pts, ","))
		} else {
			geostr = fmt.Sprintf("LINESTRING(%s)", strings.Join(pts, ","))
		}
	}
	return geostr
}

// Distance 球面两点间的距离(米)
func Distance(p1, p2 *Point) float64 {
	return angleBetween(p1.s2Point(), p2.s2Point()).Radians() * earthRadius
}

func (p *Point) s2Point() s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lng))
}

func angleBetween(a, b s2.Point) s1.Angle {
	return s2.ChordAngleBetweenPoints(a, b).Angle()
}

// 点到线段球面距离(米)
func pointToSegmentDistance(p, a, b *Point) float64 {
	pv, av, bv := p.s2Point(), a.s2Point(), b.s2Point()
	if av.ApproxEqual(bv) {
		return Distance(p, a)
	}
	// 垂足落在弧段上取垂距，否则取较近端点
	return s2.DistanceFromSegment(pv, av, bv).Radians() * earthRadius
}
