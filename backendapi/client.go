// Package backendapi is the HTTP adapter for the booking backend: it renames
// slot state into the backend's schema, posts it once, and turns the
// response into the spoken confirmation.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tablevoice/booking"
)

const defaultTimeout = 10 * time.Second

// Request is the backend's booking schema.
type Request struct {
	CustomerName      string `json:"customerName"`
	NumberOfGuests    int    `json:"numberOfGuests"`
	BookingDate       string `json:"bookingDate"`
	BookingTime       string `json:"bookingTime"`
	CuisinePreference string `json:"cuisinePreference"`
	SpecialRequests   string `json:"specialRequests"`
	City              string `json:"city"`
}

// Weather is the backend's weather advisory. Temp is nil when the backend
// had a description but no temperature.
type Weather struct {
	Description string   `json:"description"`
	Temp        *float64 `json:"temp"`
}

// Response is the slice of the backend reply the agent cares about.
type Response struct {
	WeatherInfo       *Weather `json:"weatherInfo"`
	SeatingPreference string   `json:"seatingPreference"`
}

// Client posts bookings to the backend. A single attempt with a bounded
// timeout; any transport or server failure counts as a failed booking.
type Client struct {
	url        string
	city       string
	httpClient *http.Client
}

// NewClient builds a client for the given backend URL and default city sent
// with every booking.
func NewClient(url, city string) *Client {
	return &Client{
		url:  url,
		city: city,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Submit implements booking.Submitter. It sends the completed slot state and
// composes the confirmation message from the response.
func (c *Client) Submit(ctx context.Context, s booking.Slots) (string, bool) {
	payload := Request{
		CustomerName:      s.Name,
		NumberOfGuests:    s.Guests,
		BookingDate:       s.Date,
		BookingTime:       s.Time,
		CuisinePreference: s.Cuisine,
		SpecialRequests:   s.Special,
		City:              c.city,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to encode booking payload: %v", err)
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("❌ Failed to build booking request: %v", err)
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Error sending booking to backend: %v", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Backend rejected booking: %s", resp.Status)
		return "", false
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("❌ Failed to decode backend response: %v", err)
		return "", false
	}

	return ComposeConfirmation(result), true
}

// ComposeConfirmation renders the fixed confirmation template: base
// sentence, an optional weather clause, and a seating recommendation keyed
// off the backend's category (absent means indoor).
func ComposeConfirmation(r Response) string {
	msg := "Your booking is confirmed."

	if r.WeatherInfo != nil {
		description := r.WeatherInfo.Description
		if description == "" {
			description = "unavailable"
		}
		if r.WeatherInfo.Temp != nil {
			msg += fmt.Sprintf(" The weather on that day is expected to be '%s' with a temperature of %.0f°C.", description, *r.WeatherInfo.Temp)
		} else {
			msg += fmt.Sprintf(" The weather condition is '%s', but temperature data is unavailable.", description)
		}
	}

	if r.SeatingPreference == "outdoor" {
		msg += " Based on the weather, outdoor seating is recommended."
	} else {
		msg += " Based on the weather, indoor seating is recommended."
	}

	return msg
}
