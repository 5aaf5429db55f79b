package logger

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

var compressExt = map[Compress]string{
	CompressGzip:   ".gz",
	CompressSnappy: ".snappy",
	CompressZstd:   ".zst",
}

func newCompressWriter(w io.Writer, c Compress) (io.WriteCloser, error) {
	switch c {
	case CompressGzip:
		return gzip.NewWriterLevel(w, gzip.BestSpeed)
	case CompressSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CompressZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderConcurrency(1))
	}
	return nil, fmt.Errorf("unsupported compress method %d", c)
}

// compressFile 压缩旧日志，成功后删除原文件
func compressFile(inputPath string, c Compress) (outputPath string, err error) {
	inputFile, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to open input file %s: %w", inputPath, err)
	}
	defer inputFile.Close()

	outputPath = inputPath + compressExt[c]
	if _, err := os.Stat(outputPath); err == nil {
		return "", fmt.Errorf("output file %s already exists", outputPath)
	}
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	cw, err := newCompressWriter(outputFile, c)
	if err != nil {
		os.Remove(outputPath)
		return "", err
	}
	if _, err = io.Copy(cw, inputFile); err != nil {
		cw.Close()
		os.Remove(outputPath)
		return "", fmt.Errorf("error copying data and compressing: %w", err)
	}
	if err = cw.Close(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("error closing compress writer: %w", err)
	}
	inputFile.Close()
	os.Remove(inputPath)
	return outputPath, nil
}
