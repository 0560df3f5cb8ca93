// README: Ancillary domain handler: seat maps, seat selection, baggage, and meals.
package ancillary

import (
	"context"
	"fmt"
	"strings"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
	"github.com/Darkcom18/airlines-agent/internal/types"
)

// Vendor is the slice of the vendor client ancillary services need.
type Vendor interface {
	SeatMap(ctx context.Context, bookingCode string, segmentIndex int) (*sftech.SeatMapResult, error)
	SelectSeat(ctx context.Context, bookingCode string, passengerIndex, segmentIndex int, seatNumber string) (*sftech.AncillaryResult, error)
	BaggageOptions(ctx context.Context, bookingCode string) (*sftech.AncillaryResult, error)
	AddBaggage(ctx context.Context, bookingCode string, passengerIndex int, optionCode string) (*sftech.AncillaryResult, error)
	MealOptions(ctx context.Context, bookingCode string, segmentIndex int) (*sftech.AncillaryResult, error)
	AddMeal(ctx context.Context, bookingCode string, passengerIndex, segmentIndex int, mealCode string) (*sftech.AncillaryResult, error)
}

type Service struct {
	registry *capability.Registry
	vendor   Vendor
}

func NewService(registry *capability.Registry, vendor Vendor) *Service {
	return &Service{registry: registry, vendor: vendor}
}

func (s *Service) Domain() conversation.Domain { return conversation.DomainAncillary }

func (s *Service) Handle(ctx context.Context, state *conversation.State) (string, error) {
	if !s.registry.IsAvailable("ancillary") {
		return s.registry.NotSupportedMessage("ancillary"), nil
	}

	msg, _ := state.LastUserMessage()
	lower := strings.ToLower(msg)

	code := conversation.ExtractBookingCode(msg)
	if code == "" {
		return "Bạn cho tôi mã booking (6 ký tự, ví dụ: ABC123) để xem dịch vụ bổ sung nhé.", nil
	}

	switch {
	case containsAny(lower, "chọn ghế", "chon ghe") && conversation.ExtractSeat(msg) != "":
		return s.selectSeat(ctx, code, conversation.ExtractSeat(msg))

	case containsAny(lower, "sơ đồ ghế", "so do ghe", "ghế", "ghe", "seat"):
		return s.seatMap(ctx, code)

	case containsAny(lower, "mua hành lý", "mua hanh ly", "thêm hành lý", "them hanh ly"):
		return s.addBaggage(ctx, code, lower)

	case containsAny(lower, "hành lý", "hanh ly", "baggage", "ký gửi", "ky gui"):
		return s.baggageOptions(ctx, code)

	case containsAny(lower, "đặt suất ăn", "dat suat an", "chọn món", "chon mon"):
		return s.addMeal(ctx, code, lower)

	case containsAny(lower, "suất ăn", "suat an", "đồ ăn", "do an", "meal"):
		return s.mealOptions(ctx, code)

	default:
		return fmt.Sprintf("Với booking **%s**, tôi có thể giúp bạn:\n"+
			"  • Xem sơ đồ ghế và chọn ghế\n"+
			"  • Mua thêm hành lý ký gửi\n"+
			"  • Đặt suất ăn\n\n"+
			"Bạn cần dịch vụ nào?", code), nil
	}
}

func (s *Service) seatMap(ctx context.Context, code string) (string, error) {
	res, err := s.vendor.SeatMap(ctx, code, 1)
	if err != nil {
		return "", fmt.Errorf("seat map %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không lấy được sơ đồ ghế cho **%s**: %s", code, res.Message), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "💺 **Sơ đồ ghế booking %s** (%s, %s)\n\nGhế còn trống:\n", code, res.AircraftType, res.CabinClass)
	for _, seat := range res.AvailableSeats {
		if price, ok := res.SeatPrices[seat]; ok && price > 0 {
			m := types.Money{Amount: price, Currency: "VND"}
			fmt.Fprintf(&b, "  • %s — %s\n", seat, m.Display())
		} else {
			fmt.Fprintf(&b, "  • %s — miễn phí\n", seat)
		}
	}
	b.WriteString("\nBạn muốn chọn ghế nào? (ví dụ: \"chọn ghế 12A\")")
	return b.String(), nil
}

func (s *Service) selectSeat(ctx context.Context, code, seat string) (string, error) {
	res, err := s.vendor.SelectSeat(ctx, code, 1, 1, seat)
	if err != nil {
		return "", fmt.Errorf("select seat %s on %s: %w", seat, code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể chọn ghế %s: %s", seat, res.Message), nil
	}
	return fmt.Sprintf("✅ Đã giữ ghế **%s** cho booking **%s**.", seat, code), nil
}

func (s *Service) baggageOptions(ctx context.Context, code string) (string, error) {
	res, err := s.vendor.BaggageOptions(ctx, code)
	if err != nil {
		return "", fmt.Errorf("baggage options %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không lấy được thông tin hành lý cho **%s**: %s", code, res.Message), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🧳 **Hành lý booking %s**\n", code)
	if res.IncludedAllowance != "" {
		fmt.Fprintf(&b, "\nĐã bao gồm: %s\n", res.IncludedAllowance)
	}
	if len(res.Options) > 0 {
		b.WriteString("\nGói mua thêm:\n")
		for _, o := range res.Options {
			m := types.Money{Amount: o.Price, Currency: "VND"}
			fmt.Fprintf(&b, "  • [%s] %s — %s\n", o.Code, o.Name, m.Display())
		}
		b.WriteString("\nBạn muốn mua gói nào? (ví dụ: \"mua hành lý BAG20\")")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (s *Service) addBaggage(ctx context.Context, code, lower string) (string, error) {
	opt := optionCode(lower, "bag")
	if opt == "" {
		return s.baggageOptions(ctx, code)
	}
	res, err := s.vendor.AddBaggage(ctx, code, 1, opt)
	if err != nil {
		return "", fmt.Errorf("add baggage %s to %s: %w", opt, code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể thêm gói %s: %s", strings.ToUpper(opt), res.Message), nil
	}
	return fmt.Sprintf("✅ Đã thêm gói hành lý **%s** vào booking **%s**.", strings.ToUpper(opt), code), nil
}

func (s *Service) mealOptions(ctx context.Context, code string) (string, error) {
	res, err := s.vendor.MealOptions(ctx, code, 1)
	if err != nil {
		return "", fmt.Errorf("meal options %s: %w", code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không lấy được thực đơn cho **%s**: %s", code, res.Message), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🍱 **Thực đơn booking %s**\n\n", code)
	for _, o := range res.Options {
		m := types.Money{Amount: o.Price, Currency: "VND"}
		fmt.Fprintf(&b, "  • [%s] %s — %s\n", o.Code, o.Name, m.Display())
	}
	b.WriteString("\nBạn muốn đặt món nào? (ví dụ: \"đặt suất ăn MEAL1\")")
	return b.String(), nil
}

func (s *Service) addMeal(ctx context.Context, code, lower string) (string, error) {
	opt := optionCode(lower, "meal")
	if opt == "" {
		return s.mealOptions(ctx, code)
	}
	res, err := s.vendor.AddMeal(ctx, code, 1, 1, opt)
	if err != nil {
		return "", fmt.Errorf("add meal %s to %s: %w", opt, code, err)
	}
	if !res.Success {
		return fmt.Sprintf("❌ Không thể đặt món %s: %s", strings.ToUpper(opt), res.Message), nil
	}
	return fmt.Sprintf("✅ Đã đặt suất ăn **%s** cho booking **%s**.", strings.ToUpper(opt), code), nil
}

// optionCode pulls a service option code that starts with the given
// prefix, e.g. "bag20" or "meal1".
func optionCode(lower, prefix string) string {
	for _, tok := range strings.Fields(lower) {
		tok = strings.Trim(tok, ".,!?\"")
		if strings.HasPrefix(tok, prefix) && len(tok) > len(prefix) {
			return strings.ToUpper(tok)
		}
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
