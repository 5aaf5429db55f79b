package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xyzj/geodatum/pathtool"
)

// Compress 滚动后旧日志的压缩方式
type Compress byte

const (
	CompressNone Compress = iota
	CompressGzip
	CompressSnappy
	CompressZstd
)

// ParseCompress 配置文件里的压缩方式名称
func ParseCompress(s string) Compress {
	switch strings.ToLower(s) {
	case "gzip", "gz":
		return CompressGzip
	case "snappy":
		return CompressSnappy
	case "zstd", "zst":
		return CompressZstd
	}
	return CompressNone
}

type writerOpt struct {
	// file 日志文件名，不含扩展名，为空时仅输出到控制台
	file string
	// dir 日志存放目录
	dir string
	// filename 完整路径
	filename string
	// maxsize 单个日志文件最大字节数，0-不滚动
	maxsize int64
	// maxdays 旧日志最大保留天数
	maxdays int
	// maxbackups 旧日志最多保留个数
	maxbackups   int
	compress     Compress
	timeformat   string
	backupformat string
	// fallback 日志文件打不开时的输出
	fallback io.Writer
}

func defaultWriterOpts() *writerOpt {
	return &writerOpt{
		dir:          pathtool.GetExecDir(),
		timeformat:   "2006-01-02 15:04:05.000 ",
		backupformat: "20060102150405.000",
		fallback:     os.Stderr,
	}
}

// Options 日志文件设置
type Options func(opt *writerOpt)

// WithFilename 日志文件名，会自动追加.log扩展名
func WithFilename(name string) Options {
	return func(o *writerOpt) {
		o.file = strings.TrimSuffix(name, ".log")
	}
}

// WithFileDir 日志目录，为空或"."时使用程序所在目录
func WithFileDir(name string) Options {
	if name == "" || name == "." {
		name = pathtool.GetExecDir()
	}
	return func(o *writerOpt) {
		o.dir = name
	}
}

// WithFileDays 旧日志保留天数
func WithFileDays(n int) Options {
	return func(o *writerOpt) {
		o.maxdays = max(n, 0)
	}
}

// WithFileSize 单个文件达到n字节后滚动
func WithFileSize(n int64) Options {
	return func(o *writerOpt) {
		o.maxsize = max(n, 0)
	}
}

// WithMaxBackups 旧日志最多保留个数
func WithMaxBackups(n int) Options {
	return func(o *writerOpt) {
		o.maxbackups = max(n, 0)
	}
}

// WithCompress 旧日志压缩方式
func WithCompress(c Compress) Options {
	return func(o *writerOpt) {
		o.compress = c
	}
}

// WithFallback 日志文件打不开时改写到w，默认os.Stderr
func WithFallback(w io.Writer) Options {
	return func(o *writerOpt) {
		if w != nil {
			o.fallback = w
		}
	}
}

func (o *writerOpt) resolve() {
	if o.file != "" {
		o.filename = filepath.Join(o.dir, o.file+".log")
	}
}
