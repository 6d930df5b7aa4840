package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		year, month, day int
		want             int
	}{
		{"birthday already passed this year", 1990, 6, 15, 34},
		{"birthday later this year", 1990, 8, 15, 33},
		{"birthday today", 1990, 7, 1, 34},
		{"birthday tomorrow", 1990, 7, 2, 33},
		{"same month earlier day", 1990, 7, 1, 34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageAt(now, tt.year, tt.month, tt.day))
		})
	}
}

func TestAgeAtMonotonicInBirthDate(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	prev := ageAt(now, 1980, 1, 1)
	birth := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		birth = birth.AddDate(0, 0, 7)
		age := ageAt(now, birth.Year(), int(birth.Month()), birth.Day())
		assert.LessOrEqual(t, age, prev, "age grew as the birth date moved later: %s", birth)
		prev = age
	}
}

func TestZodiacSign(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		{"mid June is Gemini", 1990, 6, 15, "Gemini"},
		{"June cutover day still Gemini", 2000, 6, 21, "Gemini"},
		{"day after June cutover is Cancer", 2000, 6, 22, "Cancer"},
		{"January before cutover is Capricorn", 2000, 1, 20, "Capricorn"},
		{"January after cutover is Aquarius", 2000, 1, 21, "Aquarius"},
		{"late December wraps to Capricorn", 2000, 12, 23, "Capricorn"},
		{"December before cutover is Sagittarius", 2000, 12, 22, "Sagittarius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ZodiacSign(tt.year, tt.month, tt.day))
		})
	}
}

func TestZodiacSignInvalidMonth(t *testing.T) {
	assert.Equal(t, "", ZodiacSign(2000, 0, 10))
	assert.Equal(t, "", ZodiacSign(2000, 13, 10))
}

func TestGeoDistance(t *testing.T) {
	berlinLat, berlinLon := 52.52, 13.405
	hamburgLat, hamburgLon := 53.5511, 9.9937
	munichLat, munichLon := 48.1351, 11.582

	t.Run("distance to itself is zero", func(t *testing.T) {
		assert.Zero(t, GeoDistance(berlinLat, berlinLon, berlinLat, berlinLon))
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := GeoDistance(berlinLat, berlinLon, hamburgLat, hamburgLon)
		ba := GeoDistance(hamburgLat, hamburgLon, berlinLat, berlinLon)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("known distance Berlin-Hamburg", func(t *testing.T) {
		d := GeoDistance(berlinLat, berlinLon, hamburgLat, hamburgLon)
		assert.InDelta(t, 255, d, 5)
	})

	t.Run("triangle inequality", func(t *testing.T) {
		ab := GeoDistance(berlinLat, berlinLon, hamburgLat, hamburgLon)
		bc := GeoDistance(hamburgLat, hamburgLon, munichLat, munichLon)
		ac := GeoDistance(berlinLat, berlinLon, munichLat, munichLon)
		assert.LessOrEqual(t, ac, ab+bc)
	})
}
