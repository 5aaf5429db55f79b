/*
Package geodatum ： 坐标转换工具集合，具体功能见各子包
*/
package geodatum

import (
	"fmt"
	"strconv"
	"strings"
)

// String2Float64 convert string to float64, 失败返回0
func String2Float64(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// String2Int64 convert string to int64, 失败返回0
func String2Int64(s string, base int) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), base, 64)
	if err != nil {
		return 0
	}
	return v
}

// VersionInfo show something
//
// name: program name
// ver: program version
// gover: golang version
// buildDate: build datetime
// buildOS: platform info
// auth: auth name
func VersionInfo(name, ver, gover, buildDate, buildOS, auth string) string {
	return fmt.Sprintf("\n%s\r\nVersion:\t%s\r\nGo version:\t%s\r\nBuild date:\t%s\r\nBuild OS:\t%s\r\nCode by:\t%s\r\n", name, ver, gover, buildDate, buildOS, auth)
}
