// README: Flight-search domain handler: validates accumulated params, fans out, renders results.
package flight

import (
	"context"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

// Service handles flight-search turns.
type Service struct {
	registry  *capability.Registry
	searchers []Searcher
}

func NewService(registry *capability.Registry, searchers []Searcher) *Service {
	return &Service{registry: registry, searchers: searchers}
}

func (s *Service) Domain() conversation.Domain { return conversation.DomainFlight }

// Handle runs one flight-search turn against the params accumulated in
// state.Search. It never returns an error for vendor failures; those
// are rendered as user-facing text.
func (s *Service) Handle(ctx context.Context, state *conversation.State) (string, error) {
	params := state.Search

	capID := capabilityFor(params.TripType)
	if !s.registry.IsAvailable(capID) {
		return s.registry.NotSupportedMessage(capID), nil
	}

	// A country mention without a concrete airport needs the user to
	// pick one before anything is searchable.
	if params.Destination == "" && len(params.Suggestions) > 0 {
		return FormatSuggestions(params.Suggestions), nil
	}

	if missing := missingParams(params); len(missing) > 0 {
		return FormatMissing(missing), nil
	}

	req := sftech.SearchRequest{
		TripType:      params.TripType,
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
		Legs:          params.Legs,
		Adults:        params.Adults,
		Children:      params.Children,
		Infants:       params.Infants,
		CabinClass:    params.CabinClass,
	}

	res := SearchAll(ctx, s.searchers, req)

	state.Results = conversation.SearchResult{
		ID:           res.SearchID,
		Flights:      res.Flights,
		TotalResults: res.TotalResults,
		HasMore:      res.HasMore,
	}

	if !res.Success {
		return FormatNoResults(params, res), nil
	}
	return FormatResults(params, res), nil
}

func capabilityFor(tripType string) string {
	switch tripType {
	case sftech.TripRoundtrip:
		return "flight_search_roundtrip"
	case sftech.TripMulticity:
		return "flight_search_multicity"
	default:
		return "flight_search_oneway"
	}
}

// missingParams lists the fields still required before the search can
// run, in prompt order.
func missingParams(p conversation.SearchParams) []string {
	var missing []string
	if p.TripType == sftech.TripMulticity {
		if len(p.Legs) == 0 {
			missing = append(missing, "legs")
		}
		return missing
	}
	if p.Origin == "" {
		missing = append(missing, "origin")
	}
	if p.Destination == "" {
		missing = append(missing, "destination")
	}
	if p.DepartureDate == "" {
		missing = append(missing, "departure_date")
	}
	if p.TripType == sftech.TripRoundtrip && p.ReturnDate == "" {
		missing = append(missing, "return_date")
	}
	return missing
}
