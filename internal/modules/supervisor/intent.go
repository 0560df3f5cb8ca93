// README: Tiered keyword classifier deciding which domain handles a message.
package supervisor

import (
	"strings"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
)

// Classify decides the routing domain for a message. Tiers are
// evaluated top to bottom and short-circuit: the first matching tier
// wins, so ties cannot occur. Low-ambiguity domains (ticketing,
// ancillary) need a single hit; domains whose lexicons overlap with
// everyday words (pnr, booking, weak flight) need two corroborating
// hits.
func Classify(message string, prior *conversation.State) conversation.Domain {
	msg := strings.ToLower(message)

	if countHits(msg, ticketingKeywords) >= 1 {
		return conversation.DomainTicketing
	}

	if countHits(msg, ancillaryKeywords) >= 1 {
		return conversation.DomainAncillary
	}

	// PNR keywords overlap heavily with booking/flight vocabulary; a
	// single incidental "booking" must not preempt a flight search.
	if countHits(msg, pnrKeywords) >= 2 {
		return conversation.DomainPNR
	}

	// Strong flight phrases are curated to be unambiguous; they route
	// before the chat-override tier below.
	if countHits(msg, flightStrongKeywords) >= 1 {
		return conversation.DomainFlight
	}

	// Questions ("mùa nào đi HN đẹp nhất?") go to chat even when weak
	// flight cues are present.
	if countHits(msg, chatKeywords) >= 1 {
		return conversation.DomainChat
	}

	if countHits(msg, bookingKeywords) >= 2 {
		return conversation.DomainBooking
	}

	if countHits(msg, flightKeywords) >= 2 {
		return conversation.DomainFlight
	}

	// A pending country-suggestion prompt makes a bare airport code
	// ("ICN") the answer to that prompt.
	if prior != nil && len(prior.Search.Suggestions) > 0 && iataPattern.MatchString(strings.ToUpper(message)) {
		return conversation.DomainFlight
	}

	// Continuation: "ok, tiếp đi" carries no flight keyword of its own
	// but resolves against prior search context.
	if prior != nil && (prior.Search.Origin != "" || prior.Search.Destination != "") {
		if countHits(msg, continueKeywords) >= 1 {
			return conversation.DomainFlight
		}
	}

	if countHits(msg, farewellKeywords) >= 1 {
		return conversation.DomainEnd
	}

	return conversation.DomainChat
}

func countHits(msg string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			n++
		}
	}
	return n
}
