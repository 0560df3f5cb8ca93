// README: PNR domain handler: retrieve, cancel, contact updates, frequent flyer, changelog.
package pnr

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/booking"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

// Vendor is the slice of the vendor client PNR management needs.
type Vendor interface {
	RetrievePNR(ctx context.Context, bookingCode string) (*sftech.PNRResult, error)
	CancelPNR(ctx context.Context, bookingCode, reason string) (*sftech.PNRResult, error)
	CancelSegment(ctx context.Context, bookingCode string, segmentIndex int) (*sftech.PNRResult, error)
	UpdateContact(ctx context.Context, bookingCode, email, phone string) (*sftech.PNRResult, error)
	AddFrequentFlyer(ctx context.Context, bookingCode string, passengerIndex int, airlineCode, ffNumber string) (*sftech.PNRResult, error)
	PNRHistory(ctx context.Context, bookingCode string) (*sftech.HistoryResult, error)
}

type Service struct {
	registry *capability.Registry
	vendor   Vendor
}

func NewService(registry *capability.Registry, vendor Vendor) *Service {
	return &Service{registry: registry, vendor: vendor}
}

func (s *Service) Domain() conversation.Domain { return conversation.DomainPNR }

var (
	segmentPattern = regexp.MustCompile(`chặng\s*(\d+)|chang\s*(\d+)|segment\s*(\d+)`)
	ffPattern      = regexp.MustCompile(`(?i)\b(VN|VJ|QH|BL|VU)[\s\-]?(\d{6,12})\b`)
)

func (s *Service) Handle(ctx context.Context, state *conversation.State) (string, error) {
	if !s.registry.IsAvailable("pnr_management") {
		return s.registry.NotSupportedMessage("pnr_management"), nil
	}

	msg, _ := state.LastUserMessage()
	lower := strings.ToLower(msg)

	code := conversation.ExtractBookingCode(msg)
	if code == "" {
		return "Bạn cho tôi mã booking (6 ký tự, ví dụ: ABC123) để thao tác nhé.", nil
	}

	switch {
	case containsAny(lower, "lịch sử", "lich su", "history"):
		return s.history(ctx, code)

	case containsAny(lower, "hủy chặng", "huy chang", "hủy segment"):
		return s.cancelSegment(ctx, code, lower)

	case containsAny(lower, "hủy", "huy", "cancel"):
		return s.cancel(ctx, code)

	case conversation.ExtractEmail(msg) != "" || conversation.ExtractPhone(msg) != "":
		return s.updateContact(ctx, code, msg)

	case containsAny(lower, "thẻ thành viên", "the thanh vien", "bông sen vàng", "frequent flyer", "skyjoy"):
		return s.addFrequentFlyer(ctx, code, msg)

	default:
		res, err := s.vendor.RetrievePNR(ctx, code)
		if err != nil {
			return "", fmt.Errorf("retrieve pnr %s: %w", code, err)
		}
		if !res.Success {
			return fmt.Sprintf("😔 Không tìm thấy PNR **%s**.", code), nil
		}
		return booking.FormatPNR(res), nil
	}
}

func (s *Service) cancel(ctx context.Context, code string) (string, error) {
	res, err := s.vendor.CancelPNR(ctx, code, "customer request")
	if err != nil {
		return "", fmt.Errorf("cancel pnr %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể hủy booking **%s**: %s", code, res.Message), nil
	}
	return fmt.Sprintf("✅ Đã hủy booking **%s**. %s", code, res.Message), nil
}

func (s *Service) cancelSegment(ctx context.Context, code, lower string) (string, error) {
	idx := segmentIndex(lower)
	if idx == 0 {
		return "Bạn muốn hủy chặng số mấy? (ví dụ: \"hủy chặng 2 của ABC123\")", nil
	}
	res, err := s.vendor.CancelSegment(ctx, code, idx)
	if err != nil {
		return "", fmt.Errorf("cancel segment %d of %s: %w", idx, code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể hủy chặng %d của **%s**: %s", idx, code, res.Message), nil
	}
	return fmt.Sprintf("✅ Đã hủy chặng %d của booking **%s**.", idx, code), nil
}

func (s *Service) updateContact(ctx context.Context, code, msg string) (string, error) {
	email := conversation.ExtractEmail(msg)
	phone := conversation.ExtractPhone(msg)
	res, err := s.vendor.UpdateContact(ctx, code, email, phone)
	if err != nil {
		return "", fmt.Errorf("update contact of %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể cập nhật liên hệ cho **%s**: %s", code, res.Message), nil
	}
	var parts []string
	if email != "" {
		parts = append(parts, "email "+email)
	}
	if phone != "" {
		parts = append(parts, "số điện thoại "+phone)
	}
	return fmt.Sprintf("✅ Đã cập nhật %s cho booking **%s**.", strings.Join(parts, " và "), code), nil
}

func (s *Service) addFrequentFlyer(ctx context.Context, code, msg string) (string, error) {
	m := ffPattern.FindStringSubmatch(msg)
	if m == nil {
		return "Bạn cho tôi số thẻ thành viên kèm hãng nhé (ví dụ: VN 12345678).", nil
	}
	airline, number := strings.ToUpper(m[1]), m[2]
	res, err := s.vendor.AddFrequentFlyer(ctx, code, 1, airline, number)
	if err != nil {
		return "", fmt.Errorf("add frequent flyer to %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể thêm thẻ thành viên vào **%s**: %s", code, res.Message), nil
	}
	return fmt.Sprintf("✅ Đã thêm thẻ %s %s vào booking **%s**.", airline, number, code), nil
}

func (s *Service) history(ctx context.Context, code string) (string, error) {
	res, err := s.vendor.PNRHistory(ctx, code)
	if err != nil {
		return "", fmt.Errorf("pnr history %s: %w", code, err)
	}
	if !res.Success || len(res.History) == 0 {
		return fmt.Sprintf("Chưa có lịch sử thay đổi nào cho booking **%s**.", code), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📜 **Lịch sử booking %s:**\n", code)
	for _, h := range res.History {
		fmt.Fprintf(&b, "  • %s — %s\n", h.Timestamp, h.Action)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func segmentIndex(lower string) int {
	m := segmentPattern.FindStringSubmatch(lower)
	if m == nil {
		return 0
	}
	for _, g := range m[1:] {
		if g != "" {
			n, _ := strconv.Atoi(g)
			return n
		}
	}
	return 0
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
