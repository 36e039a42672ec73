package geo

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(t *testing.T, lat, lon float64) Coordinate {
	t.Helper()
	c, err := NewCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func locationAt(lat, lon float64) *models.Location {
	return &models.Location{
		ID:        uuid.New(),
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestNewCoordinate_Valid(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"нулевая точка", 0, 0},
		{"границы диапазона", 90, 180},
		{"отрицательные границы", -90, -180},
		{"Москва", 55.7558, 37.6173},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCoordinate(tc.lat, tc.lon)
			require.NoError(t, err)
			assert.Equal(t, tc.lat, c.Lat)
			assert.Equal(t, tc.lon, c.Lon)
		})
	}
}

func TestNewCoordinate_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"широта выше 90", 90.0001, 0},
		{"широта ниже -90", -91, 0},
		{"долгота выше 180", 0, 180.5},
		{"долгота ниже -180", 0, -181},
		{"NaN широта", math.NaN(), 0},
		{"бесконечная долгота", 0, math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCoordinate(tc.lat, tc.lon)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []Coordinate{
		coord(t, 0, 0),
		coord(t, 40.4168, -3.7038),
		coord(t, -33.8688, 151.2093),
	}
	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := coord(t, 40.4168, -3.7038)
	b := coord(t, 41.3851, 2.1734)

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_TriangleInequality(t *testing.T) {
	a := coord(t, 40.4168, -3.7038)  // Мадрид
	b := coord(t, 41.3851, 2.1734)   // Барселона
	c := coord(t, 48.8566, 2.3522)   // Париж

	assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c)+1e-9)
}

func TestDistance_KnownValues(t *testing.T) {
	madrid := coord(t, 40.4168, -3.7038)

	// Точка в ~0.8 км от центра Мадрида
	near := coord(t, 40.4200, -3.7100)
	assert.InDelta(t, 0.8, Distance(madrid, near), 0.2)

	// Барселона в ~504 км от Мадрида
	barcelona := coord(t, 41.3851, 2.1734)
	assert.InDelta(t, 504, Distance(madrid, barcelona), 5)
}

func TestDistance_NeverNegative(t *testing.T) {
	a := coord(t, -90, -180)
	b := coord(t, 90, 180)

	assert.GreaterOrEqual(t, Distance(a, b), 0.0)
}

func TestFilterWithin_InclusiveBoundary(t *testing.T) {
	center := coord(t, 0, 0)
	candidate := locationAt(0, 1)

	exact := Distance(center, Coordinate{Lat: 0, Lon: 1})

	// Точка ровно на границе радиуса включается
	matches, err := FilterWithin(center, exact, []*models.Location{candidate})
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// Точка на эпсилон дальше границы исключается
	matches, err = FilterWithin(center, exact-1e-9, []*models.Location{candidate})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFilterWithin_InvalidRadius(t *testing.T) {
	center := coord(t, 0, 0)

	for _, radius := range []float64{0, -1, -0.001} {
		_, err := FilterWithin(center, radius, []*models.Location{locationAt(0, 0)})
		assert.ErrorIs(t, err, ErrInvalidRadius)
	}
}

func TestFilterWithin_EmptyCandidates(t *testing.T) {
	matches, err := FilterWithin(coord(t, 0, 0), 10, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFilterWithin_DropsFarPoints(t *testing.T) {
	madrid := coord(t, 40.4168, -3.7038)
	near := locationAt(40.4200, -3.7100)      // ~0.8 км
	barcelona := locationAt(41.3851, 2.1734)  // ~504 км

	matches, err := FilterWithin(madrid, 10, []*models.Location{barcelona, near})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, near.ID, matches[0].Location.ID)
	assert.InDelta(t, 0.8, matches[0].DistanceKm, 0.2)
}

func TestRank_AscendingDistance(t *testing.T) {
	matches := []Match{
		{Location: locationAt(0, 0), DistanceKm: 7.5},
		{Location: locationAt(0, 0), DistanceKm: 0.3},
		{Location: locationAt(0, 0), DistanceKm: 3.1},
	}

	Rank(matches)

	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].DistanceKm, matches[i].DistanceKm)
	}
}

func TestRank_TieBreakByID(t *testing.T) {
	first := locationAt(0, 0)
	second := locationAt(0, 0)
	first.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	second.ID = uuid.MustParse("00000000-0000-0000-0000-000000000002")

	// Одинаковое расстояние - порядок по возрастанию UUID
	matches := []Match{
		{Location: second, DistanceKm: 1.0},
		{Location: first, DistanceKm: 1.0},
	}

	Rank(matches)

	assert.Equal(t, first.ID, matches[0].Location.ID)
	assert.Equal(t, second.ID, matches[1].Location.ID)
}
