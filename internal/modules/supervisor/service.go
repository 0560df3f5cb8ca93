// README: Routing supervisor: classifies each turn, merges extracted params, dispatches to domain handlers.
package supervisor

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
)

// Handler processes one turn for a single domain and returns the reply
// text. Errors are converted to a generic apology by the supervisor;
// handlers render expected vendor failures as user-facing text
// themselves.
type Handler interface {
	Domain() conversation.Domain
	Handle(ctx context.Context, state *conversation.State) (string, error)
}

const (
	fallbackReply = "Xin lỗi, đã xảy ra lỗi. Vui lòng thử lại sau."
	farewellReply = "Cảm ơn bạn đã sử dụng dịch vụ. Tạm biệt và hẹn gặp lại! 👋"
)

// Result of one processed turn.
type Result struct {
	SessionID string
	Reply     string
	Domain    conversation.Domain
	State     *conversation.State
}

// Service is the single public entry point of the conversational core.
type Service struct {
	store    *conversation.Store
	handlers map[conversation.Domain]Handler
}

func NewService(store *conversation.Store, handlers ...Handler) *Service {
	m := make(map[conversation.Domain]Handler, len(handlers))
	for _, h := range handlers {
		m[h.Domain()] = h
	}
	return &Service{store: store, handlers: m}
}

// Route computes the next domain for the state's most recent user
// message and, for flight requests, merges freshly extracted search
// parameters into the accumulated ones. The decision is recorded as
// state.NextDomain.
func (s *Service) Route(state *conversation.State) conversation.Domain {
	msg, ok := state.LastUserMessage()
	if !ok {
		state.NextDomain = conversation.DomainChat
		return conversation.DomainChat
	}

	domain := Classify(msg, state)
	if domain == conversation.DomainFlight {
		extracted := Extract(msg)
		// A lone location in a follow-up answers the missing
		// destination; it must not displace a known origin.
		if extracted.Origin != "" && extracted.Destination == "" &&
			!hasCue(strings.ToLower(msg), originCues) {
			if len(state.Search.Suggestions) > 0 ||
				(state.Search.Origin != "" && state.Search.Destination == "") {
				extracted.Destination = extracted.Origin
				extracted.Origin = ""
			}
		}
		state.Search = conversation.MergeSearchParams(state.Search, extracted)
	}

	state.NextDomain = domain
	return domain
}

// dispatch hands the turn to the domain's handler, falling back to the
// chat handler for domains without one. Handler errors and missing
// handlers both produce the generic apology.
func (s *Service) dispatch(ctx context.Context, domain conversation.Domain, state *conversation.State) string {
	if domain == conversation.DomainEnd {
		return farewellReply
	}

	handler, ok := s.handlers[domain]
	if !ok {
		handler, ok = s.handlers[conversation.DomainChat]
	}
	if !ok {
		log.Printf("no handler registered session=%s domain=%s", state.SessionID, domain)
		return fallbackReply
	}

	reply, err := handler.Handle(ctx, state)
	if err != nil {
		// The raw error never reaches the chat surface.
		log.Printf("handler error session=%s domain=%s: %v", state.SessionID, domain, err)
		return fallbackReply
	}
	return reply
}

// Process handles one conversational turn end to end: load state,
// append the user message, route, dispatch, persist. The caller is
// responsible for serializing turns per session.
func (s *Service) Process(ctx context.Context, text, sessionID, userID string) (*Result, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = conversation.NewState(sessionID, userID)
	}
	if userID != "" {
		state.UserID = userID
	}

	state.AppendUser(text)
	s.store.Audit(ctx, sessionID, state.UserID, conversation.RoleUser, text)

	domain := s.Route(state)
	log.Printf("supervisor routed session=%s domain=%s", sessionID, domain)

	reply := s.dispatch(ctx, domain, state)

	state.AppendAssistant(reply)
	s.store.Audit(ctx, sessionID, state.UserID, conversation.RoleAssistant, reply)
	state.CurrentDomain = domain
	state.NextDomain = ""

	if err := s.store.Save(ctx, state); err != nil {
		// Losing one turn of session state degrades follow-ups but the
		// reply is still valid.
		log.Printf("session save failed session=%s: %v", sessionID, err)
	}

	return &Result{SessionID: sessionID, Reply: reply, Domain: domain, State: state}, nil
}
