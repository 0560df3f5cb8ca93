// README: Per-source HTTP client for the SFTech vendor API with timeout and bounded retry.
package sftech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Darkcom18/airlines-agent/internal/config"
)

var (
	ErrUnavailable = errors.New("vendor unavailable")
	ErrBadStatus   = errors.New("vendor returned error status")
)

// Client talks to one vendor source (F1, F10, VJ). Retries with
// exponential backoff happen here, below the search aggregator: a call
// that still fails after the attempt cap surfaces as a single error.
type Client struct {
	source string
	base   string
	creds  config.SourceCredentials
	http   *retryablehttp.Client
}

func NewClient(cfg config.VendorConfig, source string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	rc.Logger = nil // request logging is done once per call below

	return &Client{
		source: strings.ToUpper(source),
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		creds:  cfg.Credentials[strings.ToUpper(source)],
		http:   rc,
	}
}

func (c *Client) Source() string { return c.source }

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sftech: encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sftech: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Token", c.creds.Token)
	req.Header.Set("X-Api-Account", c.creds.Account)
	req.Header.Set("X-Api-Password", c.creds.Password)
	req.Header.Set("X-Api-Source", c.source)

	log.Printf("sftech request source=%s path=%s", c.source, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sftech: %s %s: %w: %v", c.source, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sftech: read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.Printf("sftech error source=%s path=%s status=%d", c.source, path, resp.StatusCode)
		return fmt.Errorf("sftech: %s %s: %w: status %d: %s", c.source, path, ErrBadStatus, resp.StatusCode, truncate(raw, 200))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("sftech: decode response: %w", err)
	}
	return nil
}

// Search dispatches to the endpoint matching the request's trip type.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	payload := map[string]any{
		"workspaceId": 1,
		"adults":      req.Adults,
		"children":    req.Children,
		"infants":     req.Infants,
		"cabinClass":  strings.ToUpper(req.CabinClass),
		"directOnly":  false,
		"limit":       20,
		"sortBy":      "PRICE",
		"sortOrder":   "ASC",
	}

	var path string
	switch req.TripType {
	case TripRoundtrip:
		path = "/api/v1/flights/search/roundtrip"
		payload["origin"] = strings.ToUpper(req.Origin)
		payload["destination"] = strings.ToUpper(req.Destination)
		payload["departureDate"] = req.DepartureDate
		payload["returnDate"] = req.ReturnDate
	case TripMulticity:
		path = "/api/v1/flights/search/multicity"
		payload["legs"] = req.Legs
	default:
		path = "/api/v1/flights/search/oneway"
		payload["origin"] = strings.ToUpper(req.Origin)
		payload["destination"] = strings.ToUpper(req.Destination)
		payload["departureDate"] = req.DepartureDate
	}

	var res SearchResponse
	if err := c.post(ctx, path, payload, &res); err != nil {
		return nil, err
	}
	for i := range res.Flights {
		res.Flights[i].Source = c.source
	}
	return &res, nil
}

// RetrievePNR fetches booking details by 6-character booking code.
func (c *Client) RetrievePNR(ctx context.Context, bookingCode string) (*PNRResult, error) {
	var res PNRResult
	err := c.post(ctx, "/api/v1/bookings/retrieve", map[string]any{"bookingCode": bookingCode}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelPNR cancels an entire booking.
func (c *Client) CancelPNR(ctx context.Context, bookingCode, reason string) (*PNRResult, error) {
	var res PNRResult
	err := c.post(ctx, "/api/v1/bookings/cancel", map[string]any{"bookingCode": bookingCode, "reason": reason}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelSegment cancels one segment of a booking. Segment indexes are
// 1-based, matching how itineraries are numbered in replies.
func (c *Client) CancelSegment(ctx context.Context, bookingCode string, segmentIndex int) (*PNRResult, error) {
	var res PNRResult
	err := c.post(ctx, "/api/v1/bookings/segments/cancel",
		map[string]any{"bookingCode": bookingCode, "segmentIndex": segmentIndex}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateContact replaces the booking's contact email and/or phone.
func (c *Client) UpdateContact(ctx context.Context, bookingCode, email, phone string) (*PNRResult, error) {
	payload := map[string]any{"bookingCode": bookingCode}
	if email != "" {
		payload["email"] = email
	}
	if phone != "" {
		payload["phone"] = phone
	}
	var res PNRResult
	if err := c.post(ctx, "/api/v1/bookings/contact", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AddFrequentFlyer attaches a frequent-flyer number to a passenger.
func (c *Client) AddFrequentFlyer(ctx context.Context, bookingCode string, passengerIndex int, airlineCode, ffNumber string) (*PNRResult, error) {
	var res PNRResult
	err := c.post(ctx, "/api/v1/bookings/frequent-flyer", map[string]any{
		"bookingCode":    bookingCode,
		"passengerIndex": passengerIndex,
		"airlineCode":    airlineCode,
		"ffNumber":       ffNumber,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// PNRHistory returns the booking's change log.
func (c *Client) PNRHistory(ctx context.Context, bookingCode string) (*HistoryResult, error) {
	var res HistoryResult
	err := c.post(ctx, "/api/v1/bookings/history", map[string]any{"bookingCode": bookingCode}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// IssueTicket issues tickets for a held booking.
func (c *Client) IssueTicket(ctx context.Context, bookingCode, paymentMethod string) (*TicketResult, error) {
	var res TicketResult
	err := c.post(ctx, "/api/v1/tickets/issue",
		map[string]any{"bookingCode": bookingCode, "paymentMethod": paymentMethod}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// VoidTicket voids a ticket within the void window. Ticket numbers are
// 13 digits.
func (c *Client) VoidTicket(ctx context.Context, ticketNumber, bookingCode, reason string) (*TicketResult, error) {
	var res TicketResult
	err := c.post(ctx, "/api/v1/tickets/void", map[string]any{
		"ticketNumber": ticketNumber,
		"bookingCode":  bookingCode,
		"reason":       reason,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// TicketStatus looks up one ticket.
func (c *Client) TicketStatus(ctx context.Context, ticketNumber string) (*TicketResult, error) {
	var res TicketResult
	err := c.post(ctx, "/api/v1/tickets/status", map[string]any{"ticketNumber": ticketNumber}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// RefundTicket requests a refund for an issued ticket.
func (c *Client) RefundTicket(ctx context.Context, ticketNumber, bookingCode, reason string) (*TicketResult, error) {
	var res TicketResult
	err := c.post(ctx, "/api/v1/tickets/refund", map[string]any{
		"ticketNumber": ticketNumber,
		"bookingCode":  bookingCode,
		"reason":       reason,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SeatMap returns the seat map for one segment of a booking.
func (c *Client) SeatMap(ctx context.Context, bookingCode string, segmentIndex int) (*SeatMapResult, error) {
	var res SeatMapResult
	err := c.post(ctx, "/api/v1/ancillary/seatmap",
		map[string]any{"bookingCode": bookingCode, "segmentIndex": segmentIndex}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SelectSeat assigns a seat to a passenger on a segment.
func (c *Client) SelectSeat(ctx context.Context, bookingCode string, passengerIndex, segmentIndex int, seatNumber string) (*AncillaryResult, error) {
	var res AncillaryResult
	err := c.post(ctx, "/api/v1/ancillary/seats/select", map[string]any{
		"bookingCode":    bookingCode,
		"passengerIndex": passengerIndex,
		"segmentIndex":   segmentIndex,
		"seatNumber":     seatNumber,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// BaggageOptions lists purchasable checked-baggage tiers.
func (c *Client) BaggageOptions(ctx context.Context, bookingCode string) (*AncillaryResult, error) {
	var res AncillaryResult
	err := c.post(ctx, "/api/v1/ancillary/baggage/options", map[string]any{"bookingCode": bookingCode}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// AddBaggage purchases a baggage tier for a passenger.
func (c *Client) AddBaggage(ctx context.Context, bookingCode string, passengerIndex int, optionCode string) (*AncillaryResult, error) {
	var res AncillaryResult
	err := c.post(ctx, "/api/v1/ancillary/baggage/add", map[string]any{
		"bookingCode":    bookingCode,
		"passengerIndex": passengerIndex,
		"optionCode":     optionCode,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// MealOptions lists special meals available on a segment.
func (c *Client) MealOptions(ctx context.Context, bookingCode string, segmentIndex int) (*AncillaryResult, error) {
	var res AncillaryResult
	err := c.post(ctx, "/api/v1/ancillary/meals/options",
		map[string]any{"bookingCode": bookingCode, "segmentIndex": segmentIndex}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// AddMeal books a special meal for a passenger on a segment.
func (c *Client) AddMeal(ctx context.Context, bookingCode string, passengerIndex, segmentIndex int, mealCode string) (*AncillaryResult, error) {
	var res AncillaryResult
	err := c.post(ctx, "/api/v1/ancillary/meals/add", map[string]any{
		"bookingCode":    bookingCode,
		"passengerIndex": passengerIndex,
		"segmentIndex":   segmentIndex,
		"mealCode":       mealCode,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
