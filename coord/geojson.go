package coord

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToOrb point to orb.Point
func (p *Point) ToOrb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb orb.Point to point
func FromOrb(op orb.Point) *Point {
	return &Point{Lng: op.Lon(), Lat: op.Lat()}
}

// Geometry 点集转orb几何: 1个点为点，首尾相同且至少4个点为面，其他为线
func Geometry(gp []*Point) orb.Geometry {
	switch len(gp) {
	case 0:
		return nil
	case 1:
		return gp[0].ToOrb()
	}
	ls := make(orb.LineString, len(gp))
	for k, v := range gp {
		ls[k] = v.ToOrb()
	}
	if len(gp) > 3 && gp[0].Equals(gp[len(gp)-1]) {
		return orb.Polygon{orb.Ring(ls)}
	}
	return ls
}

// Feature 生成一个geojson要素，properties里记录坐标系
func Feature(gp []*Point, datum Datum) *geojson.Feature {
	g := Geometry(gp)
	if g == nil {
		return nil
	}
	f := geojson.NewFeature(g)
	f.Properties["datum"] = datum.String()
	return f
}

// FeatureCollection 转换结果导出为geojson要素集合
func FeatureCollection(datum Datum, geoms ...[]*Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, gp := range geoms {
		if f := Feature(gp, datum); f != nil {
			fc.Append(f)
		}
	}
	return fc
}
