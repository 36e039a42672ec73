// Package geo содержит ядро геопоиска: расчет расстояний, фильтрацию
// кандидатов по радиусу и детерминированное ранжирование результатов.
// Все функции пакета чистые, состояния нет, безопасно вызывать конкурентно.
package geo

import (
	"errors"
	"math"
)

// Ошибки ядра геопоиска. HTTP-слой транслирует их в коды ответа,
// само ядро ничего не знает о представлении.
var (
	ErrInvalidRadius     = errors.New("geo: radius must be positive")
	ErrInvalidCoordinate = errors.New("geo: coordinate out of range")
)

// Coordinate - пара широта/долгота в десятичных градусах
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate создает координату с проверкой диапазона.
// Широта в [-90, 90], долгота в [-180, 180]; NaN и бесконечности отклоняются.
// Проверка выполняется на границе - внутрь ядра невалидные значения не попадают.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if !IsFinite(lat) || !IsFinite(lon) {
		return Coordinate{}, ErrInvalidCoordinate
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinate{}, ErrInvalidCoordinate
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// IsFinite сообщает, что значение не NaN и не бесконечность
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
