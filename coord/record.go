package coord

import (
	"strconv"
)

// Kind 坐标类型
type Kind byte

const (
	// KindLayer 图层坐标系坐标
	KindLayer Kind = iota + 1
	// KindWGS84 WGS84经纬度
	KindWGS84
	// KindProject 工程坐标系坐标
	KindProject
	// KindRasterPixel 栅格行列号
	KindRasterPixel
	// KindRasterIndex 栅格单元序号
	KindRasterIndex
	// KindNDS WGS84坐标的NDS网格
	KindNDS
	// KindNDSMars 火星坐标的NDS网格
	KindNDSMars
)

var kindNames = map[Kind]string{
	KindLayer:       "Layer CRS",
	KindWGS84:       "WGS84",
	KindProject:     "Project CRS",
	KindRasterPixel: "Row, Col",
	KindRasterIndex: "Cell Index",
	KindNDS:         "ITE",
	KindNDSMars:     "ITE_MARS",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind 命令行用的类型名
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "layer":
		return KindLayer, true
	case "wgs84", "wgs":
		return KindWGS84, true
	case "project":
		return KindProject, true
	case "pixel", "rowcol":
		return KindRasterPixel, true
	case "index", "cell":
		return KindRasterIndex, true
	case "nds", "ite":
		return KindNDS, true
	case "ndsmars", "ite_mars", "itemars":
		return KindNDSMars, true
	}
	return 0, false
}

// Record 一条带类型的坐标记录
type Record struct {
	Kind  Kind    `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Layer string  `json:"layer,omitempty"`
}

// CoordinateString 坐标文本，栅格行列号为"行, 列"，单元序号只有一个值
func (r *Record) CoordinateString() string {
	switch r.Kind {
	case KindRasterPixel:
		return formatNumber(r.Y) + ", " + formatNumber(r.X)
	case KindRasterIndex:
		return formatNumber(r.X)
	}
	return formatNumber(r.X) + ", " + formatNumber(r.Y)
}

func (r *Record) String() string {
	if _, ok := kindNames[r.Kind]; !ok {
		return "unknown coordinate type"
	}
	name := r.Layer
	if name == "" {
		name = "Map"
	}
	return r.Kind.String() + ":\t" + name + "\t" + r.CoordinateString()
}

// PickRecords 由一个WGS84坐标生成WGS84,NDS,火星NDS三条记录
func PickRecords(wgs *Point, layer string) []*Record {
	nds := wgs.ToNDS()
	mars := WGS84toGCJ02(wgs).ToNDS()
	return []*Record{
		{Kind: KindWGS84, X: wgs.Lng, Y: wgs.Lat, Layer: layer},
		{Kind: KindNDS, X: float64(nds.X), Y: float64(nds.Y), Layer: layer},
		{Kind: KindNDSMars, X: float64(mars.X), Y: float64(mars.Y), Layer: layer},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
