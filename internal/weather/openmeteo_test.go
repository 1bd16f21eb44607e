package weather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestForecastParsesHourlySamples(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.URL.Query().Get("hourly") != "winddirection_10m,windspeed_10m" {
			t.Errorf("hourly query = %q", r.URL.Query().Get("hourly"))
		}
		fmt.Fprint(w, `{"hourly":{"winddirection_10m":[90,180,270],"windspeed_10m":[5,10,15]}}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	hours, err := c.Forecast(-30.86, -64.53)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if gotPath != "/v1/forecast" {
		t.Fatalf("request path = %q, want /v1/forecast", gotPath)
	}
	if len(hours) != 3 {
		t.Fatalf("len(hours) = %d, want 3", len(hours))
	}
	if hours[1].DirectionDeg != 180 || hours[1].SpeedKmh != 10 {
		t.Fatalf("hours[1] = %+v", hours[1])
	}
}

func TestForecastTruncatesToWindow(t *testing.T) {
	dirs := make([]string, ForecastHours+20)
	speeds := make([]string, ForecastHours+20)
	for i := range dirs {
		dirs[i] = "90"
		speeds[i] = "5"
	}
	body := fmt.Sprintf(`{"hourly":{"winddirection_10m":[%s],"windspeed_10m":[%s]}}`,
		strings.Join(dirs, ","), strings.Join(speeds, ","))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	hours, err := c.Forecast(0, 0)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(hours) != ForecastHours {
		t.Fatalf("len(hours) = %d, want %d", len(hours), ForecastHours)
	}
}

func TestForecastMismatchedSeriesUsesShorter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hourly":{"winddirection_10m":[90,180],"windspeed_10m":[5]}}`)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	hours, err := c.Forecast(0, 0)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(hours) != 1 {
		t.Fatalf("len(hours) = %d, want 1", len(hours))
	}
}

func TestForecastErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	if _, err := c.Forecast(0, 0); err == nil {
		t.Fatal("non-200 response must error")
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hourly":{"winddirection_10m":[],"windspeed_10m":[]}}`)
	}))
	defer empty.Close()

	c = &Client{BaseURL: empty.URL, HTTPClient: empty.Client()}
	if _, err := c.Forecast(0, 0); err == nil {
		t.Fatal("empty series must error")
	}
}

func TestDefaultForecast(t *testing.T) {
	hours := DefaultForecast()
	if len(hours) != ForecastHours {
		t.Fatalf("len = %d, want %d", len(hours), ForecastHours)
	}
	for i, h := range hours {
		if h.DirectionDeg != 90 || h.SpeedKmh != 5 {
			t.Fatalf("hours[%d] = %+v, want steady 5 km/h at 90°", i, h)
		}
	}
}
