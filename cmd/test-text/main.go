// Text-mode harness: drives the booking dialogue from stdin with no audio
// and no LLM fallback, so the rule extractors and the state machine can be
// exercised offline. Pass -backend to submit confirmed bookings for real.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"tablevoice/backendapi"
	"tablevoice/booking"
)

// dryRunSubmitter prints the payload instead of posting it.
type dryRunSubmitter struct {
	city string
}

func (d *dryRunSubmitter) Submit(ctx context.Context, s booking.Slots) (string, bool) {
	payload := backendapi.Request{
		CustomerName:      s.Name,
		NumberOfGuests:    s.Guests,
		BookingDate:       s.Date,
		BookingTime:       s.Time,
		CuisinePreference: s.Cuisine,
		SpecialRequests:   s.Special,
		City:              d.city,
	}
	body, _ := json.MarshalIndent(payload, "", "  ")
	log.Printf("📤 Would submit booking:\n%s", body)
	return backendapi.ComposeConfirmation(backendapi.Response{}), true
}

func main() {
	backendURL := flag.String("backend", "", "Booking backend URL (empty = dry run)")
	city := flag.String("city", "Delhi,IN", "Default city sent with bookings")
	flag.Parse()

	var submitter booking.Submitter = &dryRunSubmitter{city: *city}
	if *backendURL != "" {
		submitter = backendapi.NewClient(*backendURL, *city)
	}

	controller := booking.NewController(booking.NewDateParser(), nil, submitter)

	fmt.Println("Assistant:", booking.GreetingText)

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		fmt.Println("Assistant:", controller.Turn(ctx, text))
	}

	fmt.Println("\nDone")
}
