package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xyzj/geodatum/coord"
	"github.com/xyzj/geodatum/excel"
	"github.com/xyzj/geodatum/json"
)

// writeResults 任何写入、刷新或关闭失败都返回错误
func writeResults(opt *options, results []*result, stdout io.Writer) (err error) {
	if opt.format == "xlsx" {
		return writeExcel(opt, results)
	}
	out := stdout
	if opt.output != "" {
		f, ferr := os.Create(opt.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	w := bufio.NewWriter(out)
	if err = encodeResults(opt, results, w); err != nil {
		return err
	}
	return w.Flush()
}

func encodeResults(opt *options, results []*result, w *bufio.Writer) error {
	switch opt.format {
	case "json":
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		return writeLine(w, b)
	case "geojson":
		geoms := make([][]*coord.Point, 0, len(results))
		for _, r := range results {
			geoms = append(geoms, []*coord.Point{r.Dst})
		}
		b, err := coord.FeatureCollection(opt.to, geoms...).MarshalJSON()
		if err != nil {
			return err
		}
		return writeLine(w, b)
	case "records":
		for _, r := range results {
			for _, rec := range coord.PickRecords(r.wgs, opt.layer) {
				if err := writeLine(w, json.Bytes(rec.String())); err != nil {
					return err
				}
			}
		}
	default:
		for _, r := range results {
			if err := writeLine(w, json.Bytes(r.Dst.RoundString(opt.precision))); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLine(w *bufio.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

func writeExcel(opt *options, results []*result) error {
	fn := opt.output
	if fn == "" {
		fn = programName + ".xlsx"
	}
	fd := excel.NewExcel(fn)
	if _, err := fd.AddSheet(fmt.Sprintf("%s-%s", opt.from, opt.to)); err != nil {
		return err
	}
	fd.SetColume("line", "lng", "lat", "to_lng", "to_lat", "offset_m", "nds_x", "nds_y")
	for _, r := range results {
		fd.AddRow(r.Line, r.Src.Lng, r.Src.Lat, r.Dst.Lng, r.Dst.Lat,
			strconv.FormatFloat(r.Offset, 'f', 2, 64), r.NDS.X, r.NDS.Y)
	}
	_, err := fd.Save()
	return err
}
