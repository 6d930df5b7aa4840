package utils

import (
	"math"
	"time"
)

// Per-month cutover days for the western zodiac: on or before the cutover the
// month's own sign applies, after it the next month's sign begins.
var zodiacCutovers = [12]int{20, 19, 21, 20, 21, 21, 23, 23, 23, 23, 22, 22}

var zodiacSigns = [12]string{
	"Capricorn",   // January
	"Aquarius",    // February
	"Pisces",      // March
	"Aries",       // April
	"Taurus",      // May
	"Gemini",      // June
	"Cancer",      // July
	"Leo",         // August
	"Virgo",       // September
	"Libra",       // October
	"Scorpio",     // November
	"Sagittarius", // December
}

// Age returns full years between the birth date and today.
func Age(year, month, day int) int {
	return ageAt(time.Now(), year, month, day)
}

func ageAt(now time.Time, year, month, day int) int {
	age := now.Year() - year
	m := int(now.Month()) - month
	if m < 0 || (m == 0 && now.Day() < day) {
		age--
	}
	return age
}

// ZodiacSign maps a birth month and day to one of the twelve western signs.
func ZodiacSign(year, month, day int) string {
	idx := month - 1
	if idx < 0 || idx > 11 {
		return ""
	}
	if day > zodiacCutovers[idx] {
		idx = (idx + 1) % 12
	}
	return zodiacSigns[idx]
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// GeoDistance returns the great-circle distance between two coordinates in
// kilometers (haversine, earth radius 6371 km).
func GeoDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
