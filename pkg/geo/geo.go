package geo

import "math"

// earthRadiusKm — радиус Земли в километрах.
const earthRadiusKm = 6371.0

// DistanceKm вычисляет расстояние по большому кругу между двумя точками
// в километрах. Аргумент acos зажимается в [-1, 1]: для почти совпадающих
// точек ошибки округления могут вывести его за пределы области определения.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	arg := math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLambda) +
		math.Sin(phi1)*math.Sin(phi2)
	arg = math.Max(-1, math.Min(1, arg))

	return earthRadiusKm * math.Acos(arg)
}
