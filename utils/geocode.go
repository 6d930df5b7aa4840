package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder resolves a free-text address to coordinates via LocationIQ.
// Lookup never fails hard: any error degrades to (0, 0) because signup must
// not block on the geocoding service.
type Geocoder struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewGeocoder(endpoint, apiKey string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *Geocoder) Lookup(ctx context.Context, address string) (float64, float64) {
	reqURL := fmt.Sprintf("%s?key=%s&q=%s&format=json",
		g.endpoint, g.apiKey, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("geocode lookup failed: %v", err)
		return 0, 0
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocode lookup: status %d", resp.StatusCode)
		return 0, 0
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return 0, 0
	}

	lat, err1 := strconv.ParseFloat(results[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(results[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return lat, lon
}
