package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xyzj/geodatum/coord"
	"github.com/xyzj/geodatum/json"
	"github.com/xyzj/geodatum/logger"
	"github.com/xyzj/geodatum/pathtool"
)

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-root", t.TempDir()}, args...)
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunText(t *testing.T) {
	code, out, errs := runCmd(t, "", "116.404, 39.915")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errs)
	}
	if want := "116.410244499169 39.916404281502\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRunInverse(t *testing.T) {
	code, out, _ := runCmd(t, "", "-from", "gcj02", "-to", "wgs84", "-prec", "6", "(116.41024449916938, 39.91640428150164)")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if want := "116.404000 39.915000\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRunStdin(t *testing.T) {
	in := "# comment\n\n116.404, 39.915\n{\"lng\":116.404,\"lat\":39.915}\nPOINT(116.404 39.915)\n"
	code, out, _ := runCmd(t, in, "-to", "bd09", "-prec", "4")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %q", out)
	}
	for _, l := range lines {
		if l != "116.4166 39.9227" {
			t.Errorf("got %q", l)
		}
	}
}

func TestRunBadLine(t *testing.T) {
	code, out, errs := runCmd(t, "116.404, 39.915\nabc, 1\n")
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.Contains(errs, "line 2") {
		t.Errorf("stderr should name the bad line: %q", errs)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("good line should still be written: %q", out)
	}
}

func TestRunNDS(t *testing.T) {
	code, out, _ := runCmd(t, "", "-kind", "nds", "-to", "wgs84", "-prec", "4", "11640399, 3991499")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if want := "116.4040 39.9150\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRunRecords(t *testing.T) {
	code, out, _ := runCmd(t, "", "-format", "records", "116.404, 39.915")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"WGS84:\tMap\t116.404, 39.915", "ITE:\tMap\t11640399, 3991499", "ITE_MARS:\tMap\t"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRunJSON(t *testing.T) {
	code, out, _ := runCmd(t, "", "-format", "json", "116.404, 39.915", "121.4737, 31.2304")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var rs []map[string]any
	if err := json.UnmarshalFromString(out, &rs); err != nil {
		t.Fatal(err)
	}
	if len(rs) != 2 {
		t.Fatalf("want 2 results, got %d", len(rs))
	}
	if off, _ := rs[0]["offset_m"].(float64); off < 500 || off > 600 {
		t.Errorf("beijing offset %v", rs[0]["offset_m"])
	}
}

func TestRunGeoJSON(t *testing.T) {
	code, out, _ := runCmd(t, "", "-format", "geojson", "116.404, 39.915")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "FeatureCollection") || !strings.Contains(out, "GCJ02") {
		t.Errorf("unexpected geojson %s", out)
	}
}

func TestRunExcel(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.xlsx")
	code, _, _ := runCmd(t, "", "-format", "xlsx", "-o", fn, "116.404, 39.915")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !pathtool.IsExist(fn) {
		t.Errorf("%s not written", fn)
	}
}

func TestRunConfig(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root, "116.404, 39.915"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d", code)
	}
	b, err := os.ReadFile(filepath.Join(root, "conf", programName+".yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "log_compress") {
		t.Errorf("defaults not saved: %s", b)
	}
}

func TestRunBadFlags(t *testing.T) {
	if code, _, _ := runCmd(t, "", "-to", "cgcs2000", "1, 2"); code != 2 {
		t.Errorf("unknown datum exit %d, want 2", code)
	}
	if code, _, _ := runCmd(t, "", "-kind", "layer", "1, 2"); code != 2 {
		t.Errorf("layer kind exit %d, want 2", code)
	}
	if code, _, _ := runCmd(t, "", "-format", "csv", "1, 2"); code != 2 {
		t.Errorf("csv format exit %d, want 2", code)
	}
}

func TestRunUnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	if err := os.WriteFile(root, []byte("file"), 0o664); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	code := run([]string{"-root", root, "-format", "json", "116.404, 39.915"}, nil, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	var rs []map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &rs); err != nil || len(rs) != 1 {
		t.Errorf("stdout is not the result array: %v %q", err, stdout.String())
	}
	if !strings.Contains(stderr.String(), "runtime dirs unavailable") {
		t.Errorf("stderr %q", stderr.String())
	}
}

func TestRunBrokenConfig(t *testing.T) {
	root := t.TempDir()
	fn := filepath.Join(root, "conf", programName+".yaml")
	src := "from: gcj02\nto: [bd09\n"
	if err := os.MkdirAll(filepath.Dir(fn), 0o775); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, []byte(src), 0o664); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root, "116.404, 39.915"}, nil, &stdout, &stderr); code != 2 {
		t.Errorf("exit %d, want 2", code)
	}
	if stdout.Len() != 0 || stderr.Len() == 0 {
		t.Errorf("stdout %q stderr %q", stdout.String(), stderr.String())
	}
	if b, _ := os.ReadFile(fn); string(b) != src {
		t.Errorf("config rewritten: %q", b)
	}
}

func TestRunConfigFrom(t *testing.T) {
	root := t.TempDir()
	fn := filepath.Join(root, "conf", programName+".yaml")
	if err := os.MkdirAll(filepath.Dir(fn), 0o775); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, []byte("from: gcj02\nto: wgs84\nprecision: \"6\"\n"), 0o664); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-root", root, "116.41024449916938, 39.91640428150164"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if want := "116.404000 39.915000\n"; stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
	b, _ := os.ReadFile(fn)
	if !strings.Contains(string(b), "from: gcj02") || !strings.Contains(string(b), "log_compress") {
		t.Errorf("config should keep values and gain defaults: %s", b)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteResultsFails(t *testing.T) {
	c := &converter{opt: &options{to: coord.GCJ02, format: "text", precision: 6}, log: logger.NewNilLogger()}
	results, _ := c.convertAll([]string{"116.404, 39.915"})
	for _, format := range []string{"text", "json", "geojson", "records"} {
		opt := &options{format: format, precision: 6}
		if err := writeResults(opt, results, failWriter{}); err == nil {
			t.Errorf("%s: write error dropped", format)
		}
	}
}

func TestRunOutputFails(t *testing.T) {
	if !pathtool.IsExist("/dev/full") {
		t.Skip("no /dev/full")
	}
	if code, _, _ := runCmd(t, "", "-o", "/dev/full", "116.404, 39.915"); code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
}
