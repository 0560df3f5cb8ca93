// README: General-chat domain handler: policy gating plus LLM small talk over the recent window.
package chat

import (
	"context"
	"log"
	"strings"

	"github.com/Darkcom18/airlines-agent/internal/ai"
	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
)

const systemPrompt = `Bạn là trợ lý du lịch thân thiện của một đại lý vé máy bay Việt Nam.
Bạn giúp khách tìm vé máy bay, tra cứu booking, xuất vé và các dịch vụ bổ sung.
Trả lời ngắn gọn, lịch sự, bằng tiếng Việt (hoặc tiếng Anh nếu khách dùng tiếng Anh).
Nếu khách hỏi về tìm vé, gợi ý họ cung cấp điểm đi, điểm đến và ngày bay.
Không bịa thông tin giá vé hay lịch bay.`

const staticGreeting = `Xin chào! 👋 Tôi là trợ lý du lịch của bạn.

Tôi có thể giúp bạn:
  • Tìm vé máy bay (một chiều, khứ hồi)
  • Tra cứu và quản lý booking
  • Xuất vé, void, hoàn vé
  • Chọn ghế, mua hành lý, đặt suất ăn

Ví dụ: "Tìm vé SGN đi HAN ngày 25/12"`

const errorReply = "Xin lỗi, tôi gặp sự cố khi xử lý yêu cầu. Vui lòng thử lại."

// Service handles turns no other domain claims.
type Service struct {
	registry *capability.Registry
	gen      ai.TextGenerator
}

// NewService accepts a nil generator; the handler then answers with
// the static capability greeting instead of calling out.
func NewService(registry *capability.Registry, gen ai.TextGenerator) *Service {
	return &Service{registry: registry, gen: gen}
}

func (s *Service) Domain() conversation.Domain { return conversation.DomainChat }

var (
	baggagePolicyKeywords = []string{"chính sách hành lý", "chinh sach hanh ly", "quy định hành lý", "quy dinh hanh ly", "baggage policy"}
	refundPolicyKeywords  = []string{"chính sách hoàn", "chinh sach hoan", "điều kiện hoàn", "dieu kien hoan", "chính sách đổi", "refund policy"}
)

func (s *Service) Handle(ctx context.Context, state *conversation.State) (string, error) {
	msg, _ := state.LastUserMessage()
	lower := strings.ToLower(msg)

	// Policy answers need curated fare-rule data, so they stay behind
	// the gate until that exists.
	for _, kw := range baggagePolicyKeywords {
		if strings.Contains(lower, kw) {
			return s.registry.NotSupportedMessage("baggage_policy"), nil
		}
	}
	for _, kw := range refundPolicyKeywords {
		if strings.Contains(lower, kw) {
			return s.registry.NotSupportedMessage("refund_policy"), nil
		}
	}

	if s.gen == nil {
		return staticGreeting, nil
	}

	history := toAIMessages(state.Window(conversation.DefaultWindow))
	reply, err := s.gen.Generate(ctx, systemPrompt, history)
	if err != nil {
		log.Printf("chat generation failed session=%s: %v", state.SessionID, err)
		return errorReply, nil
	}
	return reply, nil
}

func toAIMessages(window []conversation.Message) []ai.Message {
	out := make([]ai.Message, 0, len(window))
	for _, m := range window {
		role := ai.RoleUser
		if m.Role == conversation.RoleAssistant {
			role = ai.RoleAssistant
		}
		out = append(out, ai.Message{Role: role, Content: m.Content})
	}
	return out
}
