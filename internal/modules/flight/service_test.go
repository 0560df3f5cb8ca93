// README: Tests for the multi-source search aggregator and flight handler.
package flight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

type fakeSearcher struct {
	source string
	resp   *sftech.SearchResponse
	err    error
	calls  int
}

func (f *fakeSearcher) Source() string { return f.source }

func (f *fakeSearcher) Search(_ context.Context, _ sftech.SearchRequest) (*sftech.SearchResponse, error) {
	f.calls++
	return f.resp, f.err
}

func offer(id, source string, price int64) sftech.FlightOffer {
	return sftech.FlightOffer{
		ID:         id,
		Source:     source,
		TotalPrice: price,
		Currency:   "VND",
		Segments: []sftech.Segment{{
			Airline: "VN", FlightNumber: "VN123",
			Origin: "SGN", Destination: "HAN",
			DepartureTime: "06:00", ArrivalTime: "08:10",
		}},
	}
}

func TestSearchAll_PartialFailureStillSucceeds(t *testing.T) {
	searchers := []Searcher{
		&fakeSearcher{source: "F1", resp: &sftech.SearchResponse{Flights: []sftech.FlightOffer{offer("a", "F1", 2_000_000)}}},
		&fakeSearcher{source: "F10", err: errors.New("timeout")},
		&fakeSearcher{source: "VJ", resp: &sftech.SearchResponse{Flights: []sftech.FlightOffer{offer("b", "VJ", 1_500_000)}}},
	}

	res := SearchAll(context.Background(), searchers, sftech.SearchRequest{})
	if !res.Success {
		t.Fatal("expected success with one failed source")
	}
	if res.TotalResults != 2 {
		t.Errorf("expected 2 offers, got %d", res.TotalResults)
	}
	if len(res.FailedSources) != 1 || res.FailedSources[0] != "F10" {
		t.Errorf("expected failed sources [F10], got %v", res.FailedSources)
	}
	if res.Flights[0].ID != "b" {
		t.Errorf("expected cheapest offer first, got %s", res.Flights[0].ID)
	}
}

func TestSearchAll_AllSourcesFail(t *testing.T) {
	searchers := []Searcher{
		&fakeSearcher{source: "F1", err: errors.New("down")},
		&fakeSearcher{source: "VJ", err: errors.New("down")},
	}

	res := SearchAll(context.Background(), searchers, sftech.SearchRequest{})
	if res.Success {
		t.Error("expected failure when no source returns offers")
	}
	if len(res.FailedSources) != 2 {
		t.Errorf("expected 2 failed sources, got %v", res.FailedSources)
	}
}

func TestSearchAll_StableOrderOnEqualPrice(t *testing.T) {
	searchers := []Searcher{
		&fakeSearcher{source: "F1", resp: &sftech.SearchResponse{Flights: []sftech.FlightOffer{offer("first", "F1", 1_000_000)}}},
		&fakeSearcher{source: "VJ", resp: &sftech.SearchResponse{Flights: []sftech.FlightOffer{offer("second", "VJ", 1_000_000)}}},
	}

	res := SearchAll(context.Background(), searchers, sftech.SearchRequest{})
	if res.Flights[0].ID != "first" || res.Flights[1].ID != "second" {
		t.Errorf("equal prices must keep source order, got %s, %s", res.Flights[0].ID, res.Flights[1].ID)
	}
}

func TestHandle_DisabledCapabilitySkipsVendors(t *testing.T) {
	registry := capability.NewRegistry([]capability.Capability{
		{ID: "flight_search_oneway", Name: "Tìm vé một chiều", Status: capability.StatusDisabled},
	})
	fs := &fakeSearcher{source: "F1"}
	svc := NewService(registry, []Searcher{fs})

	state := conversation.NewState("s1", "")
	state.Search.Origin = "SGN"
	state.Search.Destination = "HAN"
	state.Search.DepartureDate = "2025-12-25"

	reply, err := svc.Handle(context.Background(), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.calls != 0 {
		t.Errorf("expected no vendor calls, got %d", fs.calls)
	}
	if !strings.Contains(reply, "chưa được hỗ trợ") {
		t.Errorf("expected not-supported reply, got %q", reply)
	}
}

func TestHandle_MissingParamsPrompts(t *testing.T) {
	fs := &fakeSearcher{source: "F1"}
	svc := NewService(capability.Load(), []Searcher{fs})

	state := conversation.NewState("s1", "")
	state.Search.Origin = "SGN"

	reply, err := svc.Handle(context.Background(), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.calls != 0 {
		t.Errorf("expected no vendor calls, got %d", fs.calls)
	}
	if !strings.Contains(reply, "điểm đến") || !strings.Contains(reply, "ngày đi") {
		t.Errorf("expected prompt for destination and date, got %q", reply)
	}
}

func TestHandle_CountrySuggestionsPrompt(t *testing.T) {
	fs := &fakeSearcher{source: "F1"}
	svc := NewService(capability.Load(), []Searcher{fs})

	state := conversation.NewState("s1", "")
	state.Search.Origin = "SGN"
	state.Search.Suggestions = []conversation.CountrySuggestion{
		{Country: "hàn quốc", Airports: []string{"ICN (Seoul/Incheon)", "PUS (Busan)"}},
	}

	reply, err := svc.Handle(context.Background(), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.calls != 0 {
		t.Errorf("expected no vendor calls, got %d", fs.calls)
	}
	if !strings.Contains(reply, "ICN") {
		t.Errorf("expected airport choices in reply, got %q", reply)
	}
}

func TestHandle_SearchUpdatesStateResults(t *testing.T) {
	fs := &fakeSearcher{source: "F1", resp: &sftech.SearchResponse{
		Flights: []sftech.FlightOffer{offer("a", "F1", 1_250_000)},
	}}
	svc := NewService(capability.Load(), []Searcher{fs})

	state := conversation.NewState("s1", "")
	state.Search.Origin = "SGN"
	state.Search.Destination = "HAN"
	state.Search.DepartureDate = "2025-12-25"

	reply, err := svc.Handle(context.Background(), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.calls != 1 {
		t.Errorf("expected 1 vendor call, got %d", fs.calls)
	}
	if state.Results.TotalResults != 1 {
		t.Errorf("expected results recorded on state, got %d", state.Results.TotalResults)
	}
	if !strings.Contains(reply, "1.250.000 VND") {
		t.Errorf("expected formatted price in reply, got %q", reply)
	}
	if !strings.Contains(reply, "SGN → HAN") {
		t.Errorf("expected route in reply, got %q", reply)
	}
}

func TestHandle_RoundtripRequiresReturnDate(t *testing.T) {
	fs := &fakeSearcher{source: "F1"}
	svc := NewService(capability.Load(), []Searcher{fs})

	state := conversation.NewState("s1", "")
	state.Search.TripType = sftech.TripRoundtrip
	state.Search.Origin = "SGN"
	state.Search.Destination = "DAD"
	state.Search.DepartureDate = "2025-12-25"

	reply, err := svc.Handle(context.Background(), state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.calls != 0 {
		t.Errorf("expected no vendor calls, got %d", fs.calls)
	}
	if !strings.Contains(reply, "ngày về") {
		t.Errorf("expected prompt for return date, got %q", reply)
	}
}
