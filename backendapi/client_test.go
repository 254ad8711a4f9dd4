package backendapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablevoice/booking"
)

var completedSlots = booking.Slots{
	Name:    "Asha",
	Guests:  2,
	Date:    "2026-09-01",
	Time:    "7:00 PM",
	Cuisine: "italian",
	Special: "none",
}

func TestSubmitSendsBackendSchema(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "Delhi,IN")
	_, ok := c.Submit(context.Background(), completedSlots)
	require.True(t, ok)

	assert.Equal(t, map[string]any{
		"customerName":      "Asha",
		"numberOfGuests":    float64(2),
		"bookingDate":       "2026-09-01",
		"bookingTime":       "7:00 PM",
		"cuisinePreference": "italian",
		"specialRequests":   "none",
		"city":              "Delhi,IN",
	}, got)
}

func TestSubmitComposesWeatherConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weatherInfo":{"description":"clear sky","temp":28.4},"seatingPreference":"outdoor"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "Delhi,IN")
	msg, ok := c.Submit(context.Background(), completedSlots)
	require.True(t, ok)

	assert.Equal(t, "Your booking is confirmed."+
		" The weather on that day is expected to be 'clear sky' with a temperature of 28°C."+
		" Based on the weather, outdoor seating is recommended.", msg)
}

func TestSubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "Delhi,IN")
	_, ok := c.Submit(context.Background(), completedSlots)
	assert.False(t, ok)
}

func TestSubmitUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "Delhi,IN")
	_, ok := c.Submit(context.Background(), completedSlots)
	assert.False(t, ok)
}

func TestComposeConfirmation(t *testing.T) {
	temp := 19.6

	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "no weather info",
			resp: Response{},
			want: "Your booking is confirmed. Based on the weather, indoor seating is recommended.",
		},
		{
			name: "weather without temperature",
			resp: Response{WeatherInfo: &Weather{Description: "light rain"}},
			want: "Your booking is confirmed. The weather condition is 'light rain', but temperature data is unavailable. Based on the weather, indoor seating is recommended.",
		},
		{
			name: "weather with temperature and outdoor seating",
			resp: Response{WeatherInfo: &Weather{Description: "clear sky", Temp: &temp}, SeatingPreference: "outdoor"},
			want: "Your booking is confirmed. The weather on that day is expected to be 'clear sky' with a temperature of 20°C. Based on the weather, outdoor seating is recommended.",
		},
		{
			name: "empty description falls back to unavailable",
			resp: Response{WeatherInfo: &Weather{}},
			want: "Your booking is confirmed. The weather condition is 'unavailable', but temperature data is unavailable. Based on the weather, indoor seating is recommended.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeConfirmation(tt.resp))
		})
	}
}
