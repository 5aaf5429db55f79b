// Package pathtool some path-related methods
package pathtool

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SliceFlag 切片型参数，仅支持字符串格式
type SliceFlag []string

// String 返回参数
func (f *SliceFlag) String() string {
	return strings.Join(*f, ", ")
}

// Set 设置值
func (f *SliceFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

// IsExist file is exist or not
func IsExist(p string) bool {
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil || os.IsExist(err)
}

// GetExecDir get current file path
func GetExecDir() string {
	a, _ := os.Executable()
	execdir := filepath.Dir(a)
	if strings.Contains(execdir, "go-build") {
		execdir, _ = filepath.Abs(".")
	}
	return execdir
}

// GetExecName 获取可执行文件的名称
func GetExecName() string {
	exe, _ := os.Executable()
	if exe == "" {
		return ""
	}
	return filepath.Base(exe)
}

// JoinPathFromHere 从程序执行目录开始拼接路径
func JoinPathFromHere(path ...string) string {
	s := []string{GetExecDir()}
	s = append(s, path...)
	sp := filepath.Join(s...)
	p, err := filepath.Abs(sp)
	if err != nil {
		return sp
	}
	return p
}

// MakeRuntimeDirs creates and returns the conf, log and cache directories.
//
// "." puts them next to the executable, ".." next to its parent directory,
// anything else is used as the root path. err joins every failed MkdirAll.
func MakeRuntimeDirs(rootpath string) (sconf, slog, scache string, err error) {
	switch rootpath {
	case ".":
		sconf = JoinPathFromHere("conf")
		slog = JoinPathFromHere("log")
		scache = JoinPathFromHere("cache")
	case "..":
		sconf = JoinPathFromHere("..", "conf")
		slog = JoinPathFromHere("..", "log")
		scache = JoinPathFromHere("..", "cache")
	default:
		sconf = filepath.Join(rootpath, "conf")
		slog = filepath.Join(rootpath, "log")
		scache = filepath.Join(rootpath, "cache")
	}
	err = errors.Join(
		os.MkdirAll(sconf, 0o775),
		os.MkdirAll(slog, 0o775),
		os.MkdirAll(scache, 0o775),
	)
	return sconf, slog, scache, err
}

// FileInfo 文件路径和修改时间
type FileInfo struct {
	Path    string
	ModTime time.Time
}

// SearchFilesByTime 查找dir下文件名以prefix开头的文件，按修改时间从旧到新排序
func SearchFilesByTime(dir, prefix string) ([]*FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]*FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, &FileInfo{
			Path:    filepath.Join(dir, e.Name()),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}
