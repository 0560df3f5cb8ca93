// README: Tests for supervisor routing over accumulated session state.
package supervisor

import (
	"context"
	"errors"
	"testing"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
)

type fakeHandler struct {
	domain conversation.Domain
	reply  string
	err    error
	calls  int
}

func (f *fakeHandler) Domain() conversation.Domain { return f.domain }

func (f *fakeHandler) Handle(_ context.Context, _ *conversation.State) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestRoute_EmptyStateDefaultsToChat(t *testing.T) {
	svc := NewService(nil)
	state := conversation.NewState("s1", "")

	if got := svc.Route(state); got != conversation.DomainChat {
		t.Errorf("expected chat, got %s", got)
	}
}

func TestRoute_FlightExtractsAndMerges(t *testing.T) {
	svc := NewService(nil)
	state := conversation.NewState("s1", "")

	state.AppendUser("tìm vé sg-hn 25/12/2025")
	if got := svc.Route(state); got != conversation.DomainFlight {
		t.Fatalf("expected flight, got %s", got)
	}
	if state.Search.Origin != "SGN" || state.Search.Destination != "HAN" {
		t.Errorf("expected SGN->HAN, got %s->%s", state.Search.Origin, state.Search.Destination)
	}
	if state.Search.DepartureDate != "2025-12-25" {
		t.Errorf("expected 2025-12-25, got %s", state.Search.DepartureDate)
	}
	if state.NextDomain != conversation.DomainFlight {
		t.Errorf("expected next domain recorded, got %s", state.NextDomain)
	}
}

func TestRoute_FollowUpKeepsPriorRoute(t *testing.T) {
	svc := NewService(nil)
	state := conversation.NewState("s1", "")

	state.AppendUser("tìm vé sg-hn 25/12/2025")
	svc.Route(state)

	// An elliptical follow-up resolves against the stored route.
	state.AppendUser("đi 3 người nhé")
	if got := svc.Route(state); got != conversation.DomainFlight {
		t.Fatalf("expected flight continuation, got %s", got)
	}
	if state.Search.Origin != "SGN" || state.Search.Destination != "HAN" {
		t.Errorf("route must carry over, got %s->%s", state.Search.Origin, state.Search.Destination)
	}
	if state.Search.Adults != 3 {
		t.Errorf("expected 3 adults after follow-up, got %d", state.Search.Adults)
	}
	if state.Search.DepartureDate != "2025-12-25" {
		t.Errorf("date must carry over, got %s", state.Search.DepartureDate)
	}
}

func TestRoute_AirportCodeAnswersSuggestionPrompt(t *testing.T) {
	svc := NewService(nil)
	state := conversation.NewState("s1", "")

	state.AppendUser("tìm vé từ sài gòn đi hàn quốc")
	if got := svc.Route(state); got != conversation.DomainFlight {
		t.Fatalf("expected flight, got %s", got)
	}
	if state.Search.Origin != "SGN" {
		t.Fatalf("expected origin SGN, got %q", state.Search.Origin)
	}
	if state.Search.Destination != "" || len(state.Search.Suggestions) == 0 {
		t.Fatalf("expected pending suggestions, got dest=%q suggestions=%v",
			state.Search.Destination, state.Search.Suggestions)
	}

	// The bare code picks one of the suggested airports.
	state.AppendUser("ICN")
	if got := svc.Route(state); got != conversation.DomainFlight {
		t.Fatalf("expected flight for airport pick, got %s", got)
	}
	if state.Search.Origin != "SGN" || state.Search.Destination != "ICN" {
		t.Errorf("expected SGN->ICN, got %s->%s", state.Search.Origin, state.Search.Destination)
	}
	if state.Search.Suggestions != nil {
		t.Errorf("expected suggestions cleared, got %v", state.Search.Suggestions)
	}
}

func TestDispatch_FallsBackToChatHandler(t *testing.T) {
	chat := &fakeHandler{domain: conversation.DomainChat, reply: "chat reply"}
	svc := NewService(nil, chat)
	state := conversation.NewState("s1", "")

	reply := svc.dispatch(context.Background(), conversation.DomainPNR, state)
	if reply != "chat reply" {
		t.Errorf("expected chat handler to cover the domain, got %q", reply)
	}
	if chat.calls != 1 {
		t.Errorf("expected 1 chat call, got %d", chat.calls)
	}
}

func TestDispatch_NoHandlersRepliesWithApology(t *testing.T) {
	svc := NewService(nil)
	state := conversation.NewState("s1", "")

	reply := svc.dispatch(context.Background(), conversation.DomainFlight, state)
	if reply != fallbackReply {
		t.Errorf("expected apology when nothing is registered, got %q", reply)
	}
}

func TestDispatch_HandlerErrorRepliesWithApology(t *testing.T) {
	flight := &fakeHandler{domain: conversation.DomainFlight, err: errors.New("vendor down")}
	svc := NewService(nil, flight)
	state := conversation.NewState("s1", "")

	reply := svc.dispatch(context.Background(), conversation.DomainFlight, state)
	if reply != fallbackReply {
		t.Errorf("expected apology on handler error, got %q", reply)
	}
}

func TestRoute_DomainSwitchKeepsSearchContext(t *testing.T) {
	svc := NewService(nil)
	state := conversation.NewState("s1", "")

	state.AppendUser("tìm vé sg-hn 25/12/2025")
	svc.Route(state)

	state.AppendUser("booking là gì?")
	if got := svc.Route(state); got != conversation.DomainChat {
		t.Fatalf("expected chat, got %s", got)
	}
	if state.Search.Origin != "SGN" {
		t.Errorf("search context must survive a chat turn, got %q", state.Search.Origin)
	}
}
