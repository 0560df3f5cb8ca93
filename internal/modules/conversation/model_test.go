// README: Tests for conversation state, history window, and param merging.
package conversation

import (
	"testing"

	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

func TestMergeSearchParams_NewValuesOverride(t *testing.T) {
	prior := SearchParams{
		TripType: sftech.TripOneway, Origin: "SGN", Destination: "HAN",
		DepartureDate: "2025-12-25", Adults: 1,
	}
	next := SearchParams{TripType: sftech.TripOneway, DepartureDate: "2025-12-28", Adults: 2}

	got := MergeSearchParams(prior, next)
	if got.Origin != "SGN" || got.Destination != "HAN" {
		t.Errorf("route must carry over, got %s->%s", got.Origin, got.Destination)
	}
	if got.DepartureDate != "2025-12-28" {
		t.Errorf("expected new date, got %s", got.DepartureDate)
	}
	if got.Adults != 2 {
		t.Errorf("expected 2 adults, got %d", got.Adults)
	}
}

func TestMergeSearchParams_NewDestinationClearsSuggestions(t *testing.T) {
	prior := SearchParams{
		Origin:      "SGN",
		Suggestions: []CountrySuggestion{{Country: "hàn quốc", Airports: []string{"ICN"}}},
	}
	next := SearchParams{Destination: "ICN", Adults: 1}

	got := MergeSearchParams(prior, next)
	if got.Destination != "ICN" {
		t.Errorf("expected ICN, got %s", got.Destination)
	}
	if got.Suggestions != nil {
		t.Errorf("expected suggestions cleared, got %v", got.Suggestions)
	}
}

func TestMergeSearchParams_SuggestionsReplace(t *testing.T) {
	prior := SearchParams{
		Suggestions: []CountrySuggestion{{Country: "hàn quốc", Airports: []string{"ICN"}}},
	}
	next := SearchParams{
		Suggestions: []CountrySuggestion{{Country: "nhật bản", Airports: []string{"NRT"}}},
	}

	got := MergeSearchParams(prior, next)
	if len(got.Suggestions) != 1 || got.Suggestions[0].Country != "nhật bản" {
		t.Errorf("expected replaced suggestions, got %v", got.Suggestions)
	}
}

func TestWindow(t *testing.T) {
	s := NewState("s1", "")
	for i := 0; i < 15; i++ {
		s.AppendUser("m")
	}
	if got := len(s.Window(10)); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := len(s.Window(100)); got != 15 {
		t.Errorf("expected full history, got %d", got)
	}
	if got := len(s.Window(0)); got != 15 {
		t.Errorf("expected full history for n=0, got %d", got)
	}
}

func TestLastUserMessage(t *testing.T) {
	s := NewState("s1", "")
	if _, ok := s.LastUserMessage(); ok {
		t.Error("expected no user message in empty state")
	}

	s.AppendUser("first")
	s.AppendAssistant("reply")
	got, ok := s.LastUserMessage()
	if !ok || got != "first" {
		t.Errorf("expected first, got %q ok=%v", got, ok)
	}

	s.AppendUser("second")
	got, _ = s.LastUserMessage()
	if got != "second" {
		t.Errorf("expected second, got %q", got)
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState("s1", "u1")
	if s.Search.TripType != sftech.TripOneway {
		t.Errorf("expected oneway default, got %s", s.Search.TripType)
	}
	if s.Search.Adults != 1 {
		t.Errorf("expected 1 adult default, got %d", s.Search.Adults)
	}
	if s.CurrentDomain != DomainSupervisor {
		t.Errorf("expected supervisor domain, got %s", s.CurrentDomain)
	}
}
