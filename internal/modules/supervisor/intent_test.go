// README: Tests for the tiered intent classifier.
package supervisor

import (
	"testing"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
)

func TestClassify_StrongFlightBeatsChatQuestion(t *testing.T) {
	// "mùa nào" is a chat cue, but the curated "tìm vé" phrase wins.
	got := Classify("tìm vé đi Hà Nội mùa nào rẻ", nil)
	if got != conversation.DomainFlight {
		t.Errorf("expected flight, got %s", got)
	}
}

func TestClassify_QuestionGoesToChat(t *testing.T) {
	got := Classify("mùa nào đi Hà Nội đẹp nhất?", nil)
	if got != conversation.DomainChat {
		t.Errorf("expected chat, got %s", got)
	}
}

func TestClassify_InfoQuestionAboutBookingIsChat(t *testing.T) {
	// One booking keyword plus a question marker must not reach the
	// booking tier.
	got := Classify("booking là gì?", nil)
	if got != conversation.DomainChat {
		t.Errorf("expected chat, got %s", got)
	}
}

func TestClassify_Ticketing(t *testing.T) {
	got := Classify("Xuất vé cho booking ABC123", nil)
	if got != conversation.DomainTicketing {
		t.Errorf("expected ticketing, got %s", got)
	}
}

func TestClassify_Ancillary(t *testing.T) {
	got := Classify("chọn ghế 12A cho booking ABC123", nil)
	if got != conversation.DomainAncillary {
		t.Errorf("expected ancillary, got %s", got)
	}
}

func TestClassify_PNRNeedsTwoHits(t *testing.T) {
	got := Classify("hủy booking ABC123", nil)
	if got != conversation.DomainPNR {
		t.Errorf("expected pnr, got %s", got)
	}
}

func TestClassify_RouteShorthand(t *testing.T) {
	got := Classify("tìm vé sg-hn ngày mai", nil)
	if got != conversation.DomainFlight {
		t.Errorf("expected flight, got %s", got)
	}
}

func TestClassify_EnglishFlight(t *testing.T) {
	got := Classify("find me a flight to Hanoi", nil)
	if got != conversation.DomainFlight {
		t.Errorf("expected flight, got %s", got)
	}
}

func TestClassify_ContinuationWithPriorContext(t *testing.T) {
	state := conversation.NewState("s1", "")
	state.Search.Origin = "SGN"
	state.Search.Destination = "HAN"

	got := Classify("ok tiếp đi", state)
	if got != conversation.DomainFlight {
		t.Errorf("expected flight continuation, got %s", got)
	}
}

func TestClassify_ContinuationWithoutContextIsChat(t *testing.T) {
	got := Classify("ok tiếp đi", conversation.NewState("s1", ""))
	if got != conversation.DomainChat {
		t.Errorf("expected chat, got %s", got)
	}
}

func TestClassify_Farewell(t *testing.T) {
	got := Classify("tạm biệt", nil)
	if got != conversation.DomainEnd {
		t.Errorf("expected end, got %s", got)
	}
}

func TestClassify_GreetingDefaultsToChat(t *testing.T) {
	got := Classify("xin chào", nil)
	if got != conversation.DomainChat {
		t.Errorf("expected chat, got %s", got)
	}
}
