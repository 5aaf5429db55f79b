// Package excel excel功能模块，用于导出坐标转换结果
package excel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx/v3"
	"github.com/xyzj/geodatum/pathtool"
)

func errSheetNotFound(sheetname string) error {
	return errors.New("sheet " + sheetname + " not found")
}

// FileData Excel文件结构
type FileData struct {
	fileName   string
	colStyle   *xlsx.Style
	writeFile  *xlsx.File
	writeSheet *xlsx.Sheet
}

// GetRows 获取指定sheet的所有行
func (fd *FileData) GetRows(sheetname string) [][]string {
	sheet, ok := fd.writeFile.Sheet[sheetname]
	if !ok {
		return make([][]string, 0)
	}
	ss := make([][]string, 0, sheet.MaxRow)
	l := sheet.MaxCol
	sheet.ForEachRow(func(r *xlsx.Row) error {
		rs := make([]string, 0, l)
		r.ForEachCell(func(c *xlsx.Cell) error {
			rs = append(rs, c.Value)
			return nil
		})
		if len(rs) > 0 {
			ss = append(ss, rs)
		}
		return nil
	})
	return ss
}

// AddSheet 添加sheet，并设为当前sheet
func (fd *FileData) AddSheet(sheetname string) (*xlsx.Sheet, error) {
	var err error
	fd.writeSheet, err = fd.writeFile.AddSheet(sheetname)
	if err != nil {
		return nil, errors.New("excel-sheet创建失败:" + err.Error())
	}
	return fd.writeSheet, nil
}

// AddRowInSheet 在指定sheet添加行
func (fd *FileData) AddRowInSheet(sheetname string, cells ...any) error {
	sheet, ok := fd.writeFile.Sheet[sheetname]
	if !ok {
		return errSheetNotFound(sheetname)
	}
	addCells(sheet.AddRow(), cells)
	return nil
}

// AddRow 在当前sheet添加行
func (fd *FileData) AddRow(cells ...any) {
	addCells(fd.currentSheet().AddRow(), cells)
}

// SetColume 设置列头
func (fd *FileData) SetColume(columeName ...string) {
	row := fd.currentSheet().AddRow()
	row.SetHeight(20)
	for _, v := range columeName {
		cell := row.AddCell()
		cell.SetStyle(fd.colStyle)
		cell.SetString(v)
	}
}

// Write 将excel数据写入到writer
func (fd *FileData) Write(w io.Writer) error {
	return fd.writeFile.Write(w)
}

// Save 保存到创建时的文件名
func (fd *FileData) Save() (string, error) {
	return fd.ToFile("")
}

// ToFile 保存到指定文件，f为空时使用创建时的文件名，自动补全.xlsx
func (fd *FileData) ToFile(f string) (string, error) {
	fn := fd.fileName
	if f != "" {
		fn = f
	}
	if !strings.HasSuffix(fn, ".xlsx") {
		fn += ".xlsx"
	}
	if !pathtool.IsExist(filepath.Dir(fn)) {
		os.MkdirAll(filepath.Dir(fn), 0o775)
	}
	if err := fd.writeFile.Save(fn); err != nil {
		return "", fmt.Errorf("excel-文件保存失败: %w", err)
	}
	return fn, nil
}

func (fd *FileData) currentSheet() *xlsx.Sheet {
	if fd.writeSheet == nil {
		fd.writeSheet, _ = fd.AddSheet("newsheet" + strconv.Itoa(len(fd.writeFile.Sheets)+1))
	}
	return fd.writeSheet
}

func addCells(row *xlsx.Row, cells []any) {
	row.SetHeight(15)
	for _, v := range cells {
		row.AddCell().SetValue(v)
	}
}

func headerStyle() *xlsx.Style {
	s := xlsx.NewStyle()
	s.Alignment.Horizontal = "center"
	s.Font.Bold = true
	s.ApplyAlignment = true
	s.ApplyFont = true
	return s
}

// NewExcel 创建新的excel文件
// filename: 需要保存的文件路径，可不加扩展名
func NewExcel(filename string) *FileData {
	return &FileData{
		writeFile: xlsx.NewFile(),
		colStyle:  headerStyle(),
		fileName:  filename,
	}
}

// NewExcelFromBinary 从xlsx数据读取
func NewExcelFromBinary(bs []byte, filename string) (*FileData, error) {
	xf, err := xlsx.OpenBinary(bs)
	if err != nil {
		return nil, err
	}
	return &FileData{
		writeFile: xf,
		colStyle:  headerStyle(),
		fileName:  filename,
	}, nil
}
