package coord

import "fmt"

const (
	// ndsUnit NDS网格精度，每个单位对应的度数
	ndsUnit = 90.0 / (1 << 30)
	// ndsScale 网格索引二次缩放系数
	ndsScale int64 = 90 * 100000
)

// NDSPoint NDS网格坐标
type NDSPoint struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// String return x, y
func (n NDSPoint) String() string {
	return fmt.Sprintf("%d, %d", n.X, n.Y)
}

// LngLat2NDS 经纬度转NDS网格坐标
//
// 先按90/2^30度量化(向零截断)，再乘以90*100000后算术右移30位
func LngLat2NDS(lng, lat float64) NDSPoint {
	return NDSPoint{
		X: ndsEncode(lng),
		Y: ndsEncode(lat),
	}
}

// NDS2LngLat NDS网格坐标转经纬度，与LngLat2NDS同样有截断损失
func NDS2LngLat(x, y int64) (float64, float64) {
	return ndsDecode(x), ndsDecode(y)
}

// ToNDS point to nds grid
func (p *Point) ToNDS() NDSPoint {
	return LngLat2NDS(p.Lng, p.Lat)
}

// Point nds grid to point
func (n NDSPoint) Point() *Point {
	lng, lat := NDS2LngLat(n.X, n.Y)
	return &Point{Lng: lng, Lat: lat}
}

func ndsEncode(v float64) int64 {
	idx := int64(v / ndsUnit)
	return (idx * ndsScale) >> 30
}

// ndsDecode (v<<30)/9000000 用int64整数除法，向零截断
//
// 改用浮点除法的实现与这里的结果相差不到一个90/2^30单位，解码结果以整数除法为准
func ndsDecode(v int64) float64 {
	return float64((v<<30)/ndsScale) * ndsUnit
}
