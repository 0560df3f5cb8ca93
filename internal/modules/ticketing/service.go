// README: Ticketing domain handler: issue, void, refund, and status of e-tickets.
package ticketing

import (
	"context"
	"fmt"
	"strings"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

// Vendor is the slice of the vendor client ticketing needs.
type Vendor interface {
	IssueTicket(ctx context.Context, bookingCode, paymentMethod string) (*sftech.TicketResult, error)
	VoidTicket(ctx context.Context, ticketNumber, bookingCode, reason string) (*sftech.TicketResult, error)
	TicketStatus(ctx context.Context, ticketNumber string) (*sftech.TicketResult, error)
	RefundTicket(ctx context.Context, ticketNumber, bookingCode, reason string) (*sftech.TicketResult, error)
}

type Service struct {
	registry *capability.Registry
	vendor   Vendor
}

func NewService(registry *capability.Registry, vendor Vendor) *Service {
	return &Service{registry: registry, vendor: vendor}
}

func (s *Service) Domain() conversation.Domain { return conversation.DomainTicketing }

func (s *Service) Handle(ctx context.Context, state *conversation.State) (string, error) {
	if !s.registry.IsAvailable("ticketing") {
		return s.registry.NotSupportedMessage("ticketing"), nil
	}

	msg, _ := state.LastUserMessage()
	lower := strings.ToLower(msg)
	ticket := conversation.ExtractTicketNumber(msg)
	code := conversation.ExtractBookingCode(msg)

	switch {
	case containsAny(lower, "void"):
		return s.void(ctx, ticket, code)

	case containsAny(lower, "hoàn vé", "hoan ve", "refund", "hoàn tiền", "hoan tien"):
		return s.refund(ctx, ticket, code)

	case containsAny(lower, "xuất vé", "xuat ve", "issue"):
		return s.issue(ctx, code)

	case ticket != "":
		return s.status(ctx, ticket)

	default:
		return "Bạn muốn xuất vé, void, hoàn vé hay kiểm tra vé? " +
			"Cho tôi mã booking (6 ký tự) hoặc số vé (13 số) nhé.", nil
	}
}

func (s *Service) issue(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "Bạn cho tôi mã booking (6 ký tự, ví dụ: ABC123) để xuất vé nhé.", nil
	}
	res, err := s.vendor.IssueTicket(ctx, code, "CASH")
	if err != nil {
		return "", fmt.Errorf("issue ticket for %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể xuất vé cho booking **%s**: %s", code, res.Message), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🎫 **Đã xuất vé thành công cho booking %s!**\n", code)
	if res.TicketNumber != "" {
		fmt.Fprintf(&b, "  • Số vé: %s\n", res.TicketNumber)
	}
	if res.PassengerName != "" {
		fmt.Fprintf(&b, "  • Hành khách: %s\n", res.PassengerName)
	}
	if res.IssuedAt != "" {
		fmt.Fprintf(&b, "  • Thời gian xuất: %s\n", res.IssuedAt)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (s *Service) void(ctx context.Context, ticket, code string) (string, error) {
	if ticket == "" {
		return "Bạn cho tôi số vé (13 số) cần void nhé. Lưu ý: chỉ void được trong ngày xuất vé.", nil
	}
	res, err := s.vendor.VoidTicket(ctx, ticket, code, "customer request")
	if err != nil {
		return "", fmt.Errorf("void ticket %s: %w", ticket, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể void vé **%s**: %s", ticket, res.Message), nil
	}
	return fmt.Sprintf("✅ Đã void vé **%s**. Vé không còn giá trị sử dụng.", ticket), nil
}

func (s *Service) refund(ctx context.Context, ticket, code string) (string, error) {
	if ticket == "" {
		return "Bạn cho tôi số vé (13 số) cần hoàn nhé.", nil
	}
	res, err := s.vendor.RefundTicket(ctx, ticket, code, "customer request")
	if err != nil {
		return "", fmt.Errorf("refund ticket %s: %w", ticket, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể hoàn vé **%s**: %s", ticket, res.Message), nil
	}
	return fmt.Sprintf("✅ Đã gửi yêu cầu hoàn vé **%s**. %s", ticket, res.Message), nil
}

func (s *Service) status(ctx context.Context, ticket string) (string, error) {
	res, err := s.vendor.TicketStatus(ctx, ticket)
	if err != nil {
		return "", fmt.Errorf("ticket status %s: %w", ticket, err)
	}
	if !res.Success {
		return fmt.Sprintf("😔 Không tìm thấy vé **%s**.", ticket), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🎫 **Vé %s** — %s\n", ticket, res.Status)
	if res.PassengerName != "" {
		fmt.Fprintf(&b, "  • Hành khách: %s\n", res.PassengerName)
	}
	if res.IssuedAt != "" {
		fmt.Fprintf(&b, "  • Ngày xuất: %s\n", res.IssuedAt)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
