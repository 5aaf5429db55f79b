package coord

import "math"

// 克拉索夫斯基椭球参数，GCJ02偏移算法使用
const (
	semiMajor  = 6378245.0
	flattening = 1 / 298.3
	semiMinor  = semiMajor * (1 - flattening)
	// ee 第一偏心率平方
	ee = 1 - (semiMinor*semiMinor)/(semiMajor*semiMajor)

	xPi = math.Pi * 3000.0 / 180.0
)

// MaxIterations GCJ02反算WGS84的最大迭代次数
const MaxIterations = 30

// convergence GCJ02反算的收敛阈值(度)
const convergence = 1e-6

// InChina 判断坐标是否在国内偏移范围内，边界值视为国内
func InChina(lng, lat float64) bool {
	return lng >= 72.004 && lng <= 137.8347 && lat >= 0.8293 && lat <= 55.8271
}

func transformLat(x, y float64) float64 {
	ret := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(y*math.Pi) + 40.0*math.Sin(y/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(y/12.0*math.Pi) + 320.0*math.Sin(y*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

func transformLon(x, y float64) float64 {
	ret := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(x*math.Pi) + 40.0*math.Sin(x/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(x/12.0*math.Pi) + 300.0*math.Sin(x*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

// WGS2GCJ WGS84 -> GCJ02，国外坐标原样返回
func WGS2GCJ(lng, lat float64) (float64, float64) {
	if !InChina(lng, lat) {
		return lng, lat
	}
	dLat := transformLat(lng-105.0, lat-35.0)
	dLng := transformLon(lng-105.0, lat-35.0)
	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - ee*magic*magic
	sqrtMagic := math.Sqrt(magic)
	dLat = (dLat * 180.0) / ((semiMajor * (1 - ee)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (semiMajor / sqrtMagic * math.Cos(radLat) * math.Pi)
	return lng + dLng, lat + dLat
}

// GCJ2WGS GCJ02 -> WGS84
func GCJ2WGS(lng, lat float64) (float64, float64) {
	wLng, wLat, _, _ := GCJ2WGSIter(lng, lat)
	return wLng, wLat
}

// GCJ2WGSIter GCJ02 -> WGS84，同时返回迭代次数以及是否收敛
//
// 没有解析解，用不动点迭代逼近: w1 = w0 - (gcj(w0) - g0)，
// 两个方向的增量都小于1e-6度时停止。
// 达到MaxIterations仍未收敛时返回当前的估算值。
func GCJ2WGSIter(lng, lat float64) (wLng, wLat float64, n int, converged bool) {
	w0Lng, w0Lat := lng, lat
	for n = 1; n <= MaxIterations; n++ {
		gLng, gLat := WGS2GCJ(w0Lng, w0Lat)
		wLng = w0Lng - (gLng - lng)
		wLat = w0Lat - (gLat - lat)
		if math.Abs(wLng-w0Lng) < convergence && math.Abs(wLat-w0Lat) < convergence {
			return wLng, wLat, n, true
		}
		w0Lng, w0Lat = wLng, wLat
	}
	return wLng, wLat, MaxIterations, false
}

// GCJ2BD GCJ02 -> BD09
func GCJ2BD(lng, lat float64) (float64, float64) {
	z := math.Sqrt(lng*lng+lat*lat) + 0.00002*math.Sin(lat*xPi)
	theta := math.Atan2(lat, lng) + 0.000003*math.Cos(lng*xPi)
	return z*math.Cos(theta) + 0.0065, z*math.Sin(theta) + 0.006
}

// BD2GCJ BD09 -> GCJ02
//
// 与GCJ2BD并非严格互逆，扰动项使用的是输入坐标
func BD2GCJ(lng, lat float64) (float64, float64) {
	x := lng - 0.0065
	y := lat - 0.006
	z := math.Sqrt(x*x+y*y) - 0.00002*math.Sin(y*xPi)
	theta := math.Atan2(y, x) - 0.000003*math.Cos(x*xPi)
	return z * math.Cos(theta), z * math.Sin(theta)
}

// WGS2BD WGS84 -> BD09
func WGS2BD(lng, lat float64) (float64, float64) {
	return GCJ2BD(WGS2GCJ(lng, lat))
}

// BD2WGS BD09 -> WGS84
func BD2WGS(lng, lat float64) (float64, float64) {
	return GCJ2WGS(BD2GCJ(lng, lat))
}

// WGS84toGCJ02 WGS84坐标转火星坐标
func WGS84toGCJ02(p *Point) *Point {
	lng, lat := WGS2GCJ(p.Lng, p.Lat)
	return &Point{Lng: lng, Lat: lat}
}

// GCJ02toWGS84 火星坐标转WGS84坐标
func GCJ02toWGS84(p *Point) *Point {
	lng, lat := GCJ2WGS(p.Lng, p.Lat)
	return &Point{Lng: lng, Lat: lat}
}

// GCJ02toBD09 火星坐标转百度坐标
func GCJ02toBD09(p *Point) *Point {
	lng, lat := GCJ2BD(p.Lng, p.Lat)
	return &Point{Lng: lng, Lat: lat}
}

// BD09toGCJ02 百度坐标转火星坐标
func BD09toGCJ02(p *Point) *Point {
	lng, lat := BD2GCJ(p.Lng, p.Lat)
	return &Point{Lng: lng, Lat: lat}
}

// WGS84toBD09 WGS84坐标转百度坐标
func WGS84toBD09(p *Point) *Point {
	lng, lat := WGS2BD(p.Lng, p.Lat)
	return &Point{Lng: lng, Lat: lat}
}

// BD09toWGS84 百度坐标转WGS84坐标
func BD09toWGS84(p *Point) *Point {
	lng, lat := BD2WGS(p.Lng, p.Lat)
	return &Point{Lng: lng, Lat: lat}
}
