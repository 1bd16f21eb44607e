// Package weather fetches the hourly wind forecast that drives the
// simulation, one reading per simulated hour.
package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// ForecastHours is how many hourly readings a forecast covers.
const ForecastHours = 48

// Hour is one hourly wind reading at 10 m above ground.
type Hour struct {
	DirectionDeg float64
	SpeedKmh     float64
}

// Client fetches hourly wind forecasts from the Open-Meteo API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client against the public API with a request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type forecastResponse struct {
	Hourly struct {
		WindDirection []float64 `json:"winddirection_10m"`
		WindSpeed     []float64 `json:"windspeed_10m"`
	} `json:"hourly"`
}

// Forecast returns up to ForecastHours hourly wind readings for the given
// coordinates. Callers are expected to fall back to DefaultForecast when it
// fails.
func (c *Client) Forecast(lat, lon float64) ([]Hour, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("hourly", "winddirection_10m,windspeed_10m")
	q.Set("timezone", "America/Sao_Paulo")
	endpoint := base + "/v1/forecast?" + q.Encode()

	log.WithFields(log.Fields{"lat": lat, "lon": lon}).Debug("fetching wind forecast")

	resp, err := httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch forecast: unexpected status %s", resp.Status)
	}

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}

	dirs := decoded.Hourly.WindDirection
	speeds := decoded.Hourly.WindSpeed
	n := len(dirs)
	if len(speeds) < n {
		n = len(speeds)
	}
	if n > ForecastHours {
		n = ForecastHours
	}
	if n == 0 {
		return nil, fmt.Errorf("decode forecast: no hourly wind samples")
	}

	hours := make([]Hour, n)
	for i := 0; i < n; i++ {
		hours[i] = Hour{DirectionDeg: dirs[i], SpeedKmh: speeds[i]}
	}
	return hours, nil
}

// DefaultForecast is the offline fallback: a steady 5 km/h wind at 90° for
// the full forecast window.
func DefaultForecast() []Hour {
	hours := make([]Hour, ForecastHours)
	for i := range hours {
		hours[i] = Hour{DirectionDeg: 90, SpeedKmh: 5}
	}
	return hours
}
