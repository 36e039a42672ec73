package geo

import "math"

// Средний радиус Земли в километрах
const earthRadiusKm = 6371.0

// Distance вычисляет расстояние по дуге большого круга между двумя точками
// по формуле гаверсинуса. Результат в километрах, всегда неотрицательный.
// Высота и эллипсоидность Земли сознательно не учитываются.
func Distance(a, b Coordinate) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLon := degreesToRadians(b.Lon - a.Lon)

	// Формула гаверсинуса
	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// degreesToRadians переводит градусы в радианы
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
