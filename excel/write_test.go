package excel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestExcel(t *testing.T) {
	fd := NewExcel(filepath.Join(t.TempDir(), "out", "convert"))
	if _, err := fd.AddSheet("WGS84-GCJ02"); err != nil {
		t.Fatal(err)
	}
	fd.SetColume("lng", "lat", "to_lng", "to_lat")
	fd.AddRow(116.404, 39.915, 116.41024449916938, 39.91640428150164)
	fd.AddRow("bad line")
	if err := fd.AddRowInSheet("nothing", 1); err == nil {
		t.Error("missing sheet should fail")
	}
	fn, err := fd.Save()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(fn) != ".xlsx" {
		t.Errorf("file name %s", fn)
	}
	bs, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	rd, err := NewExcelFromBinary(bs, "")
	if err != nil {
		t.Fatal(err)
	}
	rows := rd.GetRows("WGS84-GCJ02")
	if len(rows) != 3 {
		t.Fatalf("rows %v", rows)
	}
	if rows[0][0] != "lng" || rows[1][0] != "116.404" || rows[2][0] != "bad line" {
		t.Errorf("rows %v", rows)
	}
	if len(rd.GetRows("nothing")) != 0 {
		t.Error("missing sheet rows")
	}
}

func TestDefaultSheet(t *testing.T) {
	fd := NewExcel("")
	fd.AddRow(1, 2)
	buf := &bytes.Buffer{}
	if err := fd.Write(buf); err != nil {
		t.Fatal(err)
	}
	rd, err := NewExcelFromBinary(buf.Bytes(), "")
	if err != nil {
		t.Fatal(err)
	}
	if rows := rd.GetRows("newsheet1"); len(rows) != 1 || rows[0][1] != "2" {
		t.Errorf("rows %v", rows)
	}
	if _, err := NewExcelFromBinary([]byte("not a zip"), ""); err == nil {
		t.Error("bad binary should fail")
	}
}
