// README: Request/response contracts for the SFTech travel vendor API.
package sftech

import "github.com/Darkcom18/airlines-agent/internal/types"

// Trip types accepted by the search endpoints.
const (
	TripOneway    = "oneway"
	TripRoundtrip = "roundtrip"
	TripMulticity = "multicity"
)

// Leg is one segment request of a multi-city search.
type Leg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
}

// SearchRequest covers all three search families; unused fields are
// ignored by the endpoint for the given trip type.
type SearchRequest struct {
	TripType      string
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Legs          []Leg
	Adults        int
	Children      int
	Infants       int
	CabinClass    string
}

// Segment is one flight leg of an offer.
type Segment struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
}

// FlightOffer is one priced itinerary from a single source.
// Offers are ephemeral: they live only inside the session's latest
// search result and are replaced wholesale by the next search.
type FlightOffer struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Segments   []Segment `json:"segments"`
	TotalPrice int64     `json:"total_price"`
	Currency   string    `json:"currency"`
	CabinClass string    `json:"cabin_class"`
}

// Price returns the offer total as a money value.
func (f FlightOffer) Price() types.Money {
	return types.Money{Amount: f.TotalPrice, Currency: f.Currency}
}

// SearchResponse is the per-source search result.
type SearchResponse struct {
	SearchID     string        `json:"search_id"`
	Flights      []FlightOffer `json:"flights"`
	TotalResults int           `json:"total_results"`
	HasMore      bool          `json:"has_more"`
}

// Passenger as returned by booking/PNR endpoints.
type Passenger struct {
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Type      string `json:"type"` // ADT, CHD, INF
}

// Ticket is an issued e-ticket attached to a PNR.
type Ticket struct {
	TicketNumber string `json:"ticket_number"`
	Status       string `json:"status"`
}

// Contact info attached to a PNR.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PNRResult is the uniform result shape of booking/PNR operations.
// Vendor hard failures come back as Success=false with a
// human-readable Message; they are never raised as errors by handlers.
type PNRResult struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	BookingCode string      `json:"booking_code"`
	Status      string      `json:"status"`
	Segments    []Segment   `json:"segments"`
	Passengers  []Passenger `json:"passengers"`
	Tickets     []Ticket    `json:"tickets"`
	Contact     *Contact    `json:"contact"`
	TimeLimit   string      `json:"time_limit"`
	TotalPrice  int64       `json:"total_price"`
	Currency    string      `json:"currency"`
}

// HistoryEntry is one PNR changelog record.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}

// HistoryResult is the PNR changelog.
type HistoryResult struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	BookingCode string         `json:"booking_code"`
	History     []HistoryEntry `json:"history"`
}

// TicketResult is the uniform result of ticketing operations.
type TicketResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TicketNumber  string `json:"ticket_number"`
	Status        string `json:"status"`
	IssuedAt      string `json:"issued_at"`
	PassengerName string `json:"passenger_name"`
}

// SeatMapResult describes available seats for one segment.
type SeatMapResult struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	AircraftType   string           `json:"aircraft_type"`
	CabinClass     string           `json:"cabin_class"`
	AvailableSeats []string         `json:"available_seats"`
	SeatPrices     map[string]int64 `json:"seat_prices"`
}

// ServiceOption is one purchasable ancillary item (baggage tier, meal).
type ServiceOption struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Weight int    `json:"weight,omitempty"`
	Price  int64  `json:"price"`
}

// AncillaryResult is the uniform result of seat/baggage/meal operations.
type AncillaryResult struct {
	Success           bool            `json:"success"`
	Message           string          `json:"message"`
	IncludedAllowance string          `json:"included_allowance,omitempty"`
	Options           []ServiceOption `json:"options,omitempty"`
}
