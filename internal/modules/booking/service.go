// README: Booking domain handler: PNR lookup and (gated) booking creation.
package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
	"github.com/Darkcom18/airlines-agent/internal/types"
)

// Vendor is the slice of the vendor client booking needs.
type Vendor interface {
	RetrievePNR(ctx context.Context, bookingCode string) (*sftech.PNRResult, error)
}

type Service struct {
	registry *capability.Registry
	vendor   Vendor
}

func NewService(registry *capability.Registry, vendor Vendor) *Service {
	return &Service{registry: registry, vendor: vendor}
}

func (s *Service) Domain() conversation.Domain { return conversation.DomainBooking }

var createKeywords = []string{"đặt vé", "dat ve", "book vé", "đặt chỗ", "dat cho", "giữ chỗ", "giu cho"}

func (s *Service) Handle(ctx context.Context, state *conversation.State) (string, error) {
	msg, _ := state.LastUserMessage()
	lower := strings.ToLower(msg)

	for _, kw := range createKeywords {
		if strings.Contains(lower, kw) {
			return s.registry.NotSupportedMessage("booking_create"), nil
		}
	}

	if !s.registry.IsAvailable("booking_lookup") {
		return s.registry.NotSupportedMessage("booking_lookup"), nil
	}

	code := conversation.ExtractBookingCode(msg)
	if code == "" {
		return "Bạn cho tôi mã booking (6 ký tự, ví dụ: ABC123) để tra cứu nhé.", nil
	}

	res, err := s.vendor.RetrievePNR(ctx, code)
	if err != nil {
		return "", fmt.Errorf("retrieve pnr %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("😔 Không tìm thấy booking **%s**. Bạn kiểm tra lại mã giúp tôi nhé.", code), nil
	}
	return FormatPNR(res), nil
}

// FormatPNR renders a retrieved booking as a chat reply.
func FormatPNR(res *sftech.PNRResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Booking %s** — %s\n", res.BookingCode, statusVN(res.Status))

	if len(res.Segments) > 0 {
		b.WriteString("\n**Hành trình:**\n")
		for _, seg := range res.Segments {
			fmt.Fprintf(&b, "  ✈️ %s %s: %s → %s, %s\n",
				seg.Airline, seg.FlightNumber, seg.Origin, seg.Destination, seg.DepartureTime)
		}
	}
	if len(res.Passengers) > 0 {
		b.WriteString("\n**Hành khách:**\n")
		for _, p := range res.Passengers {
			fmt.Fprintf(&b, "  👤 %s %s %s\n", p.Title, p.LastName, p.FirstName)
		}
	}
	if len(res.Tickets) > 0 {
		b.WriteString("\n**Vé:**\n")
		for _, t := range res.Tickets {
			fmt.Fprintf(&b, "  🎫 %s (%s)\n", t.TicketNumber, t.Status)
		}
	}
	if res.Contact != nil {
		fmt.Fprintf(&b, "\n**Liên hệ:** %s | %s\n", res.Contact.Email, res.Contact.Phone)
	}
	if res.TotalPrice > 0 {
		m := types.Money{Amount: res.TotalPrice, Currency: res.Currency}
		fmt.Fprintf(&b, "\n💰 Tổng tiền: %s\n", m.Display())
	}
	if res.TimeLimit != "" {
		fmt.Fprintf(&b, "⏰ Hạn xuất vé: %s\n", res.TimeLimit)
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusVN(status string) string {
	switch strings.ToUpper(status) {
	case "CONFIRMED", "HK":
		return "✅ Đã xác nhận"
	case "TICKETED":
		return "🎫 Đã xuất vé"
	case "CANCELLED", "XX":
		return "❌ Đã hủy"
	case "ON_HOLD", "HL":
		return "⏳ Đang giữ chỗ"
	default:
		return status
	}
}
