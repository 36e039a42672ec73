package geo

import (
	"sort"

	"github.com/shenikar/map_my_world/internal/models"
)

// Match - локация, попавшая в радиус поиска, вместе с расстоянием до центра
type Match struct {
	Location   *models.Location
	DistanceKm float64
}

// FilterWithin возвращает локации, лежащие в пределах radiusKm от центра.
// Граница включительна: точка ровно на расстоянии radiusKm попадает в выборку.
// Радиус <= 0 отклоняется защитно, хотя вызывающая сторона валидирует его раньше.
func FilterWithin(center Coordinate, radiusKm float64, candidates []*models.Location) ([]Match, error) {
	if radiusKm <= 0 {
		return nil, ErrInvalidRadius
	}

	matches := make([]Match, 0, len(candidates))
	for _, loc := range candidates {
		d := Distance(center, Coordinate{Lat: loc.Latitude, Lon: loc.Longitude})
		if d <= radiusKm {
			matches = append(matches, Match{Location: loc, DistanceKm: d})
		}
	}
	return matches, nil
}

// Rank сортирует результаты по возрастанию расстояния.
// При равных расстояниях порядок определяется возрастанием UUID локации,
// чтобы повторные запросы по тем же данным давали одинаковый результат.
func Rank(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Location.ID.String() < matches[j].Location.ID.String()
	})
}
