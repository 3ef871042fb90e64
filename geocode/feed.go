package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// FeedStation is one entry of an authoritative station coordinate feed.
type FeedStation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// FetchStationFeed downloads a JSON station feed. Best-effort: callers log
// and ignore errors, falling back to synthetic positions.
func FetchStationFeed(url string, timeout time.Duration) ([]FeedStation, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("station feed returned %d", resp.StatusCode)
	}
	var stations []FeedStation
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// ReadStationFile reads a JSON station feed from disk.
func ReadStationFile(path string) ([]FeedStation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var stations []FeedStation
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}
