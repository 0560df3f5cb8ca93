// README: Conversation state model: message history, routing domains, and accumulated search context.
package conversation

import (
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

// Domain is a routing target for one conversational turn.
type Domain string

const (
	DomainSupervisor Domain = "supervisor"
	DomainChat       Domain = "chat"
	DomainFlight     Domain = "flight"
	DomainBooking    Domain = "booking"
	DomainTicketing  Domain = "ticketing"
	DomainPNR        Domain = "pnr"
	DomainAncillary  Domain = "ancillary"
	DomainEnd        Domain = "end"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultWindow is how many trailing messages text-generation calls
// read; the full history is retained for audit.
const DefaultWindow = 10

// Message is one history entry. History is append-only and never
// reordered.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CountrySuggestion lists candidate airports when only a country was
// mentioned; the user must pick a specific city or code.
type CountrySuggestion struct {
	Country  string   `json:"country"`
	Airports []string `json:"airports"`
}

// SearchParams accumulates flight-search context across turns so that
// elliptical follow-ups can reuse previously given fields.
type SearchParams struct {
	TripType      string                     `json:"trip_type"` // oneway, roundtrip, multicity
	Origin        string                     `json:"origin"`
	Destination   string                     `json:"destination"`
	DepartureDate string                     `json:"departure_date"` // YYYY-MM-DD
	ReturnDate    string                     `json:"return_date"`
	Adults        int                        `json:"adults"`
	Children      int                        `json:"children"`
	Infants       int                        `json:"infants"`
	CabinClass    string                     `json:"cabin_class"`
	Legs          []sftech.Leg               `json:"legs,omitempty"`
	Suggestions   []CountrySuggestion        `json:"country_suggestions,omitempty"`
}

// SearchResult is the last flight-search outcome, overwritten by each
// new search.
type SearchResult struct {
	ID           string               `json:"id"`
	Flights      []sftech.FlightOffer `json:"flights"`
	TotalResults int                  `json:"total_results"`
	HasMore      bool                 `json:"has_more"`
}

// State is one session's accumulated conversation record. It is owned
// exclusively by its session; the caller serializes turns per session.
type State struct {
	SessionID     string       `json:"session_id"`
	UserID        string       `json:"user_id,omitempty"`
	Messages      []Message    `json:"messages"`
	CurrentDomain Domain       `json:"current_domain"`
	NextDomain    Domain       `json:"next_domain,omitempty"`
	Search        SearchParams `json:"search_params"`
	Results       SearchResult `json:"search_results"`
}

// NewState creates an empty session state.
func NewState(sessionID, userID string) *State {
	return &State{
		SessionID:     sessionID,
		UserID:        userID,
		CurrentDomain: DomainSupervisor,
		Search:        SearchParams{TripType: sftech.TripOneway, Adults: 1},
	}
}

// AppendUser adds a user message.
func (s *State) AppendUser(text string) {
	s.Messages = append(s.Messages, Message{Role: RoleUser, Content: text})
}

// AppendAssistant adds an assistant message.
func (s *State) AppendAssistant(text string) {
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: text})
}

// LastUserMessage returns the most recent user-authored message,
// skipping trailing assistant entries. ok is false when the session
// has no user message at all.
func (s *State) LastUserMessage() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// Window returns a read view of the last n messages. The backing
// history is untouched.
func (s *State) Window(n int) []Message {
	if n <= 0 || n >= len(s.Messages) {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// MergeSearchParams folds freshly extracted values into prior params.
// Rule, per field: a value resolved this turn overrides the prior one;
// an unresolved (zero) value retains it. TripType and Adults are
// always resolved by extraction, so they always override. A newly
// resolved destination clears stale country suggestions.
func MergeSearchParams(prior, next SearchParams) SearchParams {
	out := prior

	if next.TripType != "" {
		out.TripType = next.TripType
	}
	if next.Origin != "" {
		out.Origin = next.Origin
	}
	if next.Destination != "" {
		out.Destination = next.Destination
		out.Suggestions = nil
	}
	if next.DepartureDate != "" {
		out.DepartureDate = next.DepartureDate
	}
	if next.ReturnDate != "" {
		out.ReturnDate = next.ReturnDate
	}
	if next.Adults > 0 {
		out.Adults = next.Adults
	}
	if next.Children > 0 {
		out.Children = next.Children
	}
	if next.Infants > 0 {
		out.Infants = next.Infants
	}
	if next.CabinClass != "" {
		out.CabinClass = next.CabinClass
	}
	if len(next.Legs) > 0 {
		out.Legs = next.Legs
	}
	if len(next.Suggestions) > 0 {
		out.Suggestions = next.Suggestions
	}
	return out
}
