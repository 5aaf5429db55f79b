package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xyzj/geodatum"
	"github.com/xyzj/geodatum/config"
	"github.com/xyzj/geodatum/coord"
	"github.com/xyzj/geodatum/logger"
	"github.com/xyzj/geodatum/pathtool"
)

var (
	version     = "0.0.0"
	goVersion   = ""
	buildDate   = ""
	platform    = ""
	author      = "xy"
	programName = "coordconv"
)

// options 命令行和配置文件合并后的参数
type options struct {
	from      coord.Datum
	to        coord.Datum
	kind      coord.Kind
	format    string
	output    string
	layer     string
	precision int
	logLevel  logger.LogLevel
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var inputs pathtool.SliceFlag
	fs.Var(&inputs, "i", "input file, one coordinate per line, can be repeated")
	from := fs.String("from", "", "source datum: wgs84|gcj02|bd09")
	to := fs.String("to", "", "target datum: wgs84|gcj02|bd09")
	kind := fs.String("kind", "", "input kind: wgs84|nds|ndsmars (nds inputs resolve to wgs84 first)")
	format := fs.String("format", "", "output format: text|json|geojson|xlsx|records")
	output := fs.String("o", "", "output file, default stdout (xlsx defaults to coordconv.xlsx)")
	layer := fs.String("layer", "", "layer name shown in records output")
	prec := fs.Int("prec", -1, "decimals of text output")
	root := fs.String("root", ".", "runtime root, conf and log dirs are created under it")
	ver := fs.Bool("version", false, "print version info")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *ver {
		fmt.Fprintln(stdout, geodatum.VersionInfo(programName, version, goVersion, buildDate, platform, author))
		return 0
	}

	// 运行目录不可写时不保存配置也不写日志文件，转换照常进行
	confdir, logdir, _, err := pathtool.MakeRuntimeDirs(*root)
	persist := err == nil
	if !persist {
		fmt.Fprintln(stderr, "runtime dirs unavailable, config and file log disabled: "+err.Error())
	}
	cnfname := ""
	if persist {
		cnfname = filepath.Join(confdir, programName+".yaml")
	}
	cnf, err := config.NewConfig(cnfname)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	opt, err := loadOptions(cnf, map[string]string{
		"from":   *from,
		"to":     *to,
		"kind":   *kind,
		"format": *format,
	})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	if persist && cnf.Dirty() {
		if err := cnf.Save(); err != nil {
			fmt.Fprintln(stderr, "save config: "+err.Error())
		}
	}
	opt.output = *output
	opt.layer = *layer
	if *prec >= 0 {
		opt.precision = *prec
	}

	filelog := logger.NewNilLogger()
	if persist {
		filelog = logger.NewLogger(opt.logLevel,
			logger.WithFileDir(logdir),
			logger.WithFilename(programName),
			logger.WithFileSize(int64(cnf.GetItem("log_size_mb").TryInt())<<20),
			logger.WithFileDays(cnf.GetItem("log_days").TryInt()),
			logger.WithCompress(logger.ParseCompress(cnf.GetItem("log_compress").String())),
			logger.WithFallback(stderr))
	}
	log := logger.NewMultiLogger(
		logger.NewWriterLogger(&lineWriter{w: stderr}, logger.LogWarning),
		filelog,
	)
	defer logger.Close(log)

	lines, err := readInputs(fs.Args(), inputs, stdin)
	if err != nil {
		log.Error("read input: " + err.Error())
		return 1
	}
	c := &converter{opt: opt, log: log}
	results, failed := c.convertAll(lines)
	log.Info(fmt.Sprintf("%s -> %s: %d converted, %d failed", opt.from, opt.to, len(results), failed))

	if err := writeResults(opt, results, stdout); err != nil {
		log.Error("write output: " + err.Error())
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// loadOptions 配置文件提供默认值，非空的命令行参数覆盖
func loadOptions(cnf *config.File, flags map[string]string) (*options, error) {
	defaults := []*config.Item{
		{Key: "from", Value: config.NewValue("wgs84"), Comment: "source datum, wgs84|gcj02|bd09"},
		{Key: "to", Value: config.NewValue("gcj02"), Comment: "target datum, wgs84|gcj02|bd09"},
		{Key: "kind", Value: config.NewValue("wgs84"), Comment: "input kind, wgs84|nds|ndsmars"},
		{Key: "format", Value: config.NewValue("text"), Comment: "output format, text|json|geojson|xlsx|records"},
		{Key: "precision", Value: config.NewValue("12"), Comment: "decimals of text output"},
		{Key: "log_level", Value: config.NewValue("20"), Comment: "file log level, 10-debug,20-info,30-warning,40-error"},
		{Key: "log_size_mb", Value: config.NewValue("10"), Comment: "rotate the log file after this size"},
		{Key: "log_days", Value: config.NewValue("15"), Comment: "days to keep rotated log files"},
		{Key: "log_compress", Value: config.NewValue("zstd"), Comment: "compress rotated logs, none|gzip|snappy|zstd"},
	}
	vals := make(map[string]string, len(defaults))
	for _, it := range defaults {
		vals[it.Key] = cnf.GetDefault(it).String()
	}
	for k, v := range flags {
		if v != "" {
			vals[k] = v
		}
	}

	opt := &options{
		format:    strings.ToLower(vals["format"]),
		precision: cnf.GetItem("precision").TryInt(),
		logLevel:  logger.LogLevel(cnf.GetItem("log_level").TryInt()),
	}
	var err error
	if opt.from, err = coord.ParseDatum(vals["from"]); err != nil {
		return nil, err
	}
	if opt.to, err = coord.ParseDatum(vals["to"]); err != nil {
		return nil, err
	}
	var ok bool
	if opt.kind, ok = coord.ParseKind(strings.ToLower(vals["kind"])); !ok {
		return nil, fmt.Errorf("unknown input kind: %s", vals["kind"])
	}
	switch opt.kind {
	case coord.KindWGS84, coord.KindNDS, coord.KindNDSMars:
	default:
		return nil, fmt.Errorf("input kind %s needs a crs engine", opt.kind)
	}
	switch opt.format {
	case "text", "json", "geojson", "xlsx", "records":
	default:
		return nil, fmt.Errorf("unknown output format: %s", opt.format)
	}
	if opt.logLevel == 0 {
		opt.logLevel = logger.LogInfo
	}
	return opt, nil
}

// readInputs 依次读取参数，输入文件，都没有时读stdin
func readInputs(args []string, files []string, stdin io.Reader) ([]string, error) {
	lines := make([]string, 0, len(args))
	lines = append(lines, args...)
	for _, fn := range files {
		f, err := os.Open(fn)
		if err != nil {
			return nil, err
		}
		lines, err = scanLines(f, lines)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
	}
	if len(args) == 0 && len(files) == 0 && stdin != nil {
		return scanLines(stdin, lines)
	}
	return lines, nil
}

func scanLines(r io.Reader, lines []string) ([]string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// lineWriter 控制台日志换行
type lineWriter struct {
	w io.Writer
}

func (l *lineWriter) Write(p []byte) (int, error) {
	if len(p) == 0 || p[len(p)-1] != '\n' {
		p = append(p[:len(p):len(p)], '\n')
	}
	return l.w.Write(p)
}
