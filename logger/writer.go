package logger

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xyzj/geodatum/json"
	"github.com/xyzj/geodatum/loopfunc"
	"github.com/xyzj/geodatum/pathtool"
)

var lineEnd = []byte{10}

type logData struct {
	t time.Time
	d []byte
}

func (l *logData) Bytes(timeformat string) []byte {
	xp := make([]byte, 0, len(timeformat)+len(l.d)+1)
	xp = append(xp, json.Bytes(l.t.Format(timeformat))...)
	xp = append(xp, l.d...)
	if !bytes.HasSuffix(xp, lineEnd) {
		xp = append(xp, lineEnd...)
	}
	return xp
}

// Writer 带时间戳的日志输出，设置了文件名时异步写文件并按大小滚动
type Writer struct {
	cnf         *writerOpt
	buff        *bufio.Writer
	fno         *os.File
	out         io.Writer
	currentSize int64
	seq         int
	closeOnce   sync.Once
	locker      sync.Mutex
	chanWorker  chan *logData
	closed      atomic.Bool
	done        chan struct{}
}

func (w *Writer) openfile() error {
	var err error
	w.fno, err = os.OpenFile(w.cnf.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o664)
	if err != nil {
		return err
	}
	info, err := w.fno.Stat()
	if err != nil {
		return err
	}
	w.currentSize = info.Size()
	w.buff.Reset(w.fno)
	return nil
}

// Close 写完缓存后关闭文件，控制台输出不做处理
func (w *Writer) Close() error {
	w.locker.Lock()
	defer w.locker.Unlock()
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		if w.cnf.filename == "" {
			return
		}
		close(w.chanWorker)
		<-w.done
	})
	return nil
}

func (w *Writer) Write(b []byte) (n int, err error) {
	w.locker.Lock()
	defer w.locker.Unlock()
	if w.closed.Load() {
		return 0, os.ErrClosed
	}
	l := &logData{
		t: time.Now(),
		d: append([]byte(nil), b...),
	}
	if w.cnf.filename == "" {
		return w.out.Write(l.Bytes(w.cnf.timeformat))
	}
	w.chanWorker <- l
	return len(b), nil
}

// run 后台写文件，chanWorker关闭后退出
func (w *Writer) run() {
	if w.fno == nil {
		if err := w.openfile(); err != nil {
			panic(err)
		}
	}
	for ld := range w.chanWorker {
		n, _ := w.buff.Write(ld.Bytes(w.cnf.timeformat))
		w.currentSize += int64(n)
		if len(w.chanWorker) == 0 {
			w.buff.Flush()
		}
		if w.cnf.maxsize > 0 && w.currentSize >= w.cnf.maxsize {
			if err := w.rotate(); err != nil {
				panic(err)
			}
		}
	}
	w.buff.Flush()
	w.fno.Close()
	w.fno = nil
	close(w.done)
}

func (w *Writer) rotate() error {
	w.buff.Flush()
	w.fno.Close()
	w.fno = nil
	w.seq++
	oldfile := w.cnf.filename + "." + time.Now().Format(w.cnf.backupformat) + "." + strconv.Itoa(w.seq)
	os.Rename(w.cnf.filename, oldfile)
	if err := w.openfile(); err != nil {
		return err
	}
	if w.cnf.compress != CompressNone {
		compressFile(oldfile, w.cnf.compress)
	}
	w.cleanup()
	return nil
}

// cleanup 清理过期和超出个数的旧日志
func (w *Writer) cleanup() {
	if w.cnf.maxbackups == 0 && w.cnf.maxdays == 0 {
		return
	}
	files, _ := pathtool.SearchFilesByTime(w.cnf.dir, filepath.Base(w.cnf.filename)+".")
	olderthen := time.Time{}
	if w.cnf.maxdays > 0 {
		olderthen = time.Now().AddDate(0, 0, -w.cnf.maxdays)
	}
	keepfiles := make([]string, 0, len(files))
	for _, f := range files {
		if !olderthen.IsZero() && f.ModTime.Before(olderthen) {
			os.Remove(f.Path)
			continue
		}
		keepfiles = append(keepfiles, f.Path)
	}
	if l := len(keepfiles); w.cnf.maxbackups > 0 && l > w.cnf.maxbackups {
		for _, f := range keepfiles[:l-w.cnf.maxbackups] {
			os.Remove(f)
		}
	}
}

// NewWriter 设置了文件名时写文件，否则写控制台
func NewWriter(opts ...Options) io.Writer {
	opt := defaultWriterOpts()
	for _, o := range opts {
		o(opt)
	}
	opt.resolve()
	if opt.filename == "" {
		return NewConsoleWriter()
	}
	os.MkdirAll(opt.dir, 0o775)
	w := &Writer{
		cnf:        opt,
		chanWorker: make(chan *logData, 200),
		buff:       bufio.NewWriterSize(io.Discard, 8192*4),
		done:       make(chan struct{}),
	}
	if err := w.openfile(); err != nil {
		opt.fallback.Write(json.Bytes("open log file failed, use console instead: " + err.Error() + "\n"))
		return newStreamWriter(opt.fallback)
	}
	go loopfunc.LoopFunc(func(params ...any) {
		w.run()
	}, "log writer", opt.fallback)
	return w
}

// NewConsoleWriter 输出到控制台
func NewConsoleWriter() io.Writer {
	return newStreamWriter(os.Stdout)
}

func newStreamWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
		cnf: defaultWriterOpts(),
	}
}
