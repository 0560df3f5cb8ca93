// README: Static capability registry; the single feature-flag mechanism consulted by every domain handler.
package capability

import (
	"fmt"
	"strings"
)

// Status of a capability.
type Status string

const (
	StatusAvailable      Status = "available"
	StatusComingSoon     Status = "coming_soon"
	StatusDisabled       Status = "disabled"
	StatusNotImplemented Status = "not_implemented"
)

// Capability describes one independently toggleable feature.
type Capability struct {
	ID             string
	Name           string // display name (Vietnamese)
	Description    string
	Status         Status
	Examples       []string
	RequiredParams []string
	Handler        string // owning domain handler
}

// Registry is loaded once at process start and read-only afterwards,
// so it is safely shared across sessions without locking. Changing a
// capability's status requires a restart.
type Registry struct {
	caps  map[string]Capability
	order []string
}

// NewRegistry builds a registry from the given capability list,
// preserving declaration order for display.
func NewRegistry(caps []Capability) *Registry {
	r := &Registry{caps: make(map[string]Capability, len(caps))}
	for _, c := range caps {
		r.caps[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

// Load returns the default capability table.
func Load() *Registry {
	return NewRegistry([]Capability{
		{
			ID:     "flight_search_oneway",
			Name:   "Tìm vé một chiều",
			Status: StatusAvailable,
			Examples: []string{
				"Tìm vé SGN đi HAN ngày 25/12",
				"Vé từ Sài Gòn ra Hà Nội ngày mai",
			},
			RequiredParams: []string{"origin", "destination", "departure_date"},
			Handler:        "flight",
		},
		{
			ID:     "flight_search_roundtrip",
			Name:   "Tìm vé khứ hồi",
			Status: StatusAvailable,
			Examples: []string{
				"Vé khứ hồi SGN-DAD 25/12 về 30/12",
			},
			RequiredParams: []string{"origin", "destination", "departure_date", "return_date"},
			Handler:        "flight",
		},
		{
			ID:             "flight_search_multicity",
			Name:           "Tìm vé nhiều chặng",
			Status:         StatusAvailable,
			RequiredParams: []string{"legs"},
			Handler:        "flight",
		},
		{
			ID:             "price_by_month",
			Name:           "Giá vé theo tháng",
			Status:         StatusNotImplemented,
			RequiredParams: []string{"destination", "month"},
			Handler:        "flight",
		},
		{
			ID:             "booking_lookup",
			Name:           "Tra cứu booking",
			Status:         StatusAvailable,
			Examples:       []string{"Tra cứu booking ABC123"},
			RequiredParams: []string{"pnr_code"},
			Handler:        "booking",
		},
		{
			ID:             "booking_create",
			Name:           "Đặt vé",
			Status:         StatusNotImplemented,
			RequiredParams: []string{"flight_id", "passengers"},
			Handler:        "booking",
		},
		{
			ID:             "ticketing",
			Name:           "Xuất vé và quản lý vé",
			Status:         StatusAvailable,
			Examples:       []string{"Xuất vé ABC123"},
			RequiredParams: []string{"pnr_code"},
			Handler:        "ticketing",
		},
		{
			ID:             "pnr_management",
			Name:           "Quản lý PNR",
			Status:         StatusAvailable,
			Examples:       []string{"Tra cứu PNR ABC123"},
			RequiredParams: []string{"pnr_code"},
			Handler:        "pnr",
		},
		{
			ID:             "ancillary",
			Name:           "Dịch vụ bổ sung (ghế, hành lý, suất ăn)",
			Status:         StatusAvailable,
			RequiredParams: []string{"pnr_code"},
			Handler:        "ancillary",
		},
		{
			ID:      "baggage_policy",
			Name:    "Chính sách hành lý",
			Status:  StatusNotImplemented,
			Handler: "chat",
		},
		{
			ID:      "refund_policy",
			Name:    "Chính sách hoàn/đổi vé",
			Status:  StatusNotImplemented,
			Handler: "chat",
		},
		{
			ID:       "general_chat",
			Name:     "Trò chuyện chung",
			Status:   StatusAvailable,
			Examples: []string{"Xin chào", "Bạn có thể giúp gì?"},
			Handler:  "chat",
		},
	})
}

// Get returns the capability and whether it exists.
func (r *Registry) Get(id string) (Capability, bool) {
	c, ok := r.caps[id]
	return c, ok
}

// IsAvailable reports whether the capability exists and is available.
func (r *Registry) IsAvailable(id string) bool {
	c, ok := r.caps[id]
	return ok && c.Status == StatusAvailable
}

// Available returns all available capabilities in declaration order.
func (r *Registry) Available() []Capability {
	var out []Capability
	for _, id := range r.order {
		if c := r.caps[id]; c.Status == StatusAvailable {
			out = append(out, c)
		}
	}
	return out
}

// NotSupportedMessage composes the uniform "not supported" reply,
// listing available capabilities as alternatives.
func (r *Registry) NotSupportedMessage(id string) string {
	capName := "này"
	if c, ok := r.caps[id]; ok {
		capName = c.Name
	}

	available := r.Available()
	if len(available) == 0 {
		return fmt.Sprintf("🚧 **Chức năng \"%s\" hiện chưa được hỗ trợ.**\n\n"+
			"Hệ thống đang trong quá trình phát triển. Vui lòng quay lại sau!", capName)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("🚧 **Chức năng \"%s\" hiện chưa được hỗ trợ.**", capName))
	lines = append(lines, "", "Tôi có thể giúp bạn:")
	for _, c := range available {
		lines = append(lines, "  • "+c.Name)
	}
	if ex := r.examples(2); len(ex) > 0 {
		lines = append(lines, "", "**Ví dụ:**")
		for _, e := range ex {
			lines = append(lines, "  - "+e)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Registry) examples(max int) []string {
	var out []string
	for _, c := range r.Available() {
		for _, e := range c.Examples {
			if len(out) == max {
				return out
			}
			out = append(out, e)
		}
	}
	return out
}
