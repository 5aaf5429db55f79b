package coord

import (
	"errors"
	"fmt"
)

// ErrRasterBounds 行列号超出栅格范围
var ErrRasterBounds = errors.New("raster coordinates out of bounds")

// Raster 栅格的范围和像元大小，坐标为栅格所在图层的坐标系
type Raster struct {
	MinX   float64 // 左边界
	MaxY   float64 // 上边界
	PixelX float64 // 像元宽
	PixelY float64 // 像元高
	Width  int     // 列数
	Height int     // 行数
}

// MaxX 右边界
func (r *Raster) MaxX() float64 {
	return r.MinX + float64(r.Width)*r.PixelX
}

// MinY 下边界
func (r *Raster) MinY() float64 {
	return r.MaxY - float64(r.Height)*r.PixelY
}

// Contains 点是否在栅格范围内(含边界)
func (r *Raster) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX() && y >= r.MinY() && y <= r.MaxY
}

// Pixel 图层坐标所在的行列号，范围外ok为false
//
// 右边界和下边界上的点归入最后一列/最后一行
func (r *Raster) Pixel(x, y float64) (row, col int, ok bool) {
	if !r.Contains(x, y) {
		return 0, 0, false
	}
	col = min(int((x-r.MinX)/r.PixelX), r.Width-1)
	row = min(int((r.MaxY-y)/r.PixelY), r.Height-1)
	return row, col, true
}

// Index 行列号转单元序号
func (r *Raster) Index(row, col int) int {
	return row*r.Width + col
}

// RowCol 单元序号转行列号
func (r *Raster) RowCol(index int) (row, col int) {
	if r.Width <= 0 {
		return 0, 0
	}
	return index / r.Width, index % r.Width
}

// Center 像元中心的图层坐标
func (r *Raster) Center(row, col int) (x, y float64, err error) {
	if row < 0 || row >= r.Height || col < 0 || col >= r.Width {
		return 0, 0, fmt.Errorf("%w, row=%d, col=%d", ErrRasterBounds, row, col)
	}
	x = r.MinX + float64(col)*r.PixelX + r.PixelX/2
	y = r.MaxY - float64(row)*r.PixelY - r.PixelY/2
	return x, y, nil
}

// Records 图层坐标对应的行列号与单元序号记录，范围外返回nil
func (r *Raster) Records(x, y float64, layer string) []*Record {
	row, col, ok := r.Pixel(x, y)
	if !ok {
		return nil
	}
	return []*Record{
		{Kind: KindRasterIndex, X: float64(r.Index(row, col)), Layer: layer},
		{Kind: KindRasterPixel, X: float64(col), Y: float64(row), Layer: layer},
	}
}
