package utils

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// MaxNearbyRadiusMeters - верхняя граница радиуса поиска по кампусу
const MaxNearbyRadiusMeters = 5000.0

// DistanceMeters вычисляет расстояние между двумя точками в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса (1 м - 5 км)
func ValidateRadius(radiusMeters float64) bool {
	return radiusMeters >= 1 && radiusMeters <= MaxNearbyRadiusMeters
}
