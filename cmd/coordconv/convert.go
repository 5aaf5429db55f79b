package main

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xyzj/geodatum/coord"
	"github.com/xyzj/geodatum/logger"
)

// result 一行输入的转换结果
type result struct {
	Line   int            `json:"line"`
	Src    *coord.Point   `json:"src"`
	Dst    *coord.Point   `json:"dst"`
	Offset float64        `json:"offset_m"`
	NDS    coord.NDSPoint `json:"nds"`
	Iter   int            `json:"iterations,omitempty"`
	wgs    *coord.Point
}

type converter struct {
	opt *options
	log logger.Logger
}

// convertAll 跳过空行和#注释行，返回成功的结果和失败行数
func (c *converter) convertAll(lines []string) ([]*result, int) {
	results := make([]*result, 0, len(lines))
	failed := 0
	for k, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		r, err := c.convert(s)
		if err != nil {
			failed++
			c.log.Error(fmt.Sprintf("line %d: %s", k+1, err.Error()))
			continue
		}
		r.Line = k + 1
		results = append(results, r)
	}
	return results, failed
}

func (c *converter) convert(s string) (*result, error) {
	vals, err := parseLine(s)
	if err != nil {
		return nil, err
	}
	from := c.opt.from
	var src *coord.Point
	switch c.opt.kind {
	case coord.KindNDS, coord.KindNDSMars:
		// 网格坐标先还原为WGS84
		if src, err = coord.ResolveWGS84(c.opt.kind, vals); err != nil {
			return nil, err
		}
		from = coord.WGS84
	default:
		if len(vals) != 2 {
			return nil, fmt.Errorf("%w: %s", coord.ErrCoordinateFormat, s)
		}
		src = coord.NewPoint(vals[0], vals[1])
	}

	r := &result{Src: src}
	r.Dst, r.Iter = c.datum(src, from, c.opt.to)
	r.wgs = src
	switch {
	case c.opt.to == coord.WGS84:
		r.wgs = r.Dst
	case from != coord.WGS84:
		r.wgs = coord.Convert(src, from, coord.WGS84)
	}
	r.NDS = r.Dst.ToNDS()
	r.Offset = coord.Distance(src, r.Dst)
	c.log.Debug(fmt.Sprintf("%s %s -> %s %s", from, src.String(), c.opt.to, r.Dst.String()))
	return r, nil
}

// datum 需要GCJ02反算时记录迭代次数，未收敛时告警
func (c *converter) datum(p *coord.Point, from, to coord.Datum) (*coord.Point, int) {
	if to != coord.WGS84 || from == coord.WGS84 {
		return coord.Convert(p, from, to), 0
	}
	g := p
	if from == coord.BD09 {
		g = coord.BD09toGCJ02(p)
	}
	lng, lat, n, ok := coord.GCJ2WGSIter(g.Lng, g.Lat)
	if !ok {
		c.log.Warning(fmt.Sprintf("gcj02 inverse of %s not converged after %d iterations", p.String(), n))
	}
	return coord.NewPoint(lng, lat), n
}

// parseLine 支持"x, y"文本，POINT(x y)以及含lng/lat(lon/lat, x/y)的json对象
func parseLine(s string) ([]float64, error) {
	switch {
	case strings.HasPrefix(s, "{"):
		if !gjson.Valid(s) {
			return nil, fmt.Errorf("%w: invalid json %s", coord.ErrCoordinateFormat, s)
		}
		for _, keys := range [][2]string{{"lng", "lat"}, {"lon", "lat"}, {"x", "y"}} {
			rs := gjson.GetMany(s, keys[0], keys[1])
			if rs[0].Exists() && rs[1].Exists() {
				return []float64{rs[0].Float(), rs[1].Float()}, nil
			}
		}
		return nil, fmt.Errorf("%w: no coordinate fields in %s", coord.ErrCoordinateFormat, s)
	case strings.HasPrefix(strings.ToUpper(s), "POINT"):
		pts := coord.Text2Geo(strings.ToUpper(s))
		if len(pts) != 1 {
			return nil, fmt.Errorf("%w: %s", coord.ErrCoordinateFormat, s)
		}
		return []float64{pts[0].Lng, pts[0].Lat}, nil
	}
	return coord.ParseCoordinate(s)
}
