package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrCoordinateFormat 坐标文本格式错误
	ErrCoordinateFormat = errors.New("failed parse coordinate string")
	// ErrNeedsCRS 该类型坐标需要宿主程序的坐标系转换
	ErrNeedsCRS = errors.New("coordinate kind needs a crs transform")
)

// ParseCoordinate 解析剪贴板里的坐标文本
//
// 支持 "x, y"，"(x, y)" 以及单个整数(栅格单元序号)
func ParseCoordinate(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		s = strings.TrimSpace(s[1:])
	}
	if strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	ss := strings.Split(s, ",")
	switch len(ss) {
	case 1:
		idx, err := strconv.ParseInt(strings.TrimSpace(ss[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCoordinateFormat, s)
		}
		return []float64{float64(idx)}, nil
	case 2:
		x, err := strconv.ParseFloat(strings.TrimSpace(ss[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCoordinateFormat, s)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ss[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCoordinateFormat, s)
		}
		return []float64{x, y}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCoordinateFormat, s)
}

// ResolveWGS84 把解析出的坐标值按类型还原为WGS84坐标
//
// NDS网格直接解码，火星NDS网格解码后再做GCJ02反算。
// 图层/工程/栅格坐标依赖宿主的坐标系引擎，返回ErrNeedsCRS
func ResolveWGS84(kind Kind, vals []float64) (*Point, error) {
	if len(vals) == 0 || len(vals) > 2 {
		return nil, ErrCoordinateFormat
	}
	if kind != KindRasterIndex && len(vals) == 1 {
		return nil, fmt.Errorf("%w: %s needs two values", ErrCoordinateFormat, kind.String())
	}
	switch kind {
	case KindWGS84:
		return &Point{Lng: vals[0], Lat: vals[1]}, nil
	case KindNDS:
		return NDSPoint{X: int64(vals[0]), Y: int64(vals[1])}.Point(), nil
	case KindNDSMars:
		return GCJ02toWGS84(NDSPoint{X: int64(vals[0]), Y: int64(vals[1])}.Point()), nil
	case KindLayer, KindProject, KindRasterPixel, KindRasterIndex:
		return nil, fmt.Errorf("%w: %s", ErrNeedsCRS, kind.String())
	}
	return nil, fmt.Errorf("unknown zoom type %d", kind)
}
