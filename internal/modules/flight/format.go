// README: Vietnamese chat rendering of flight-search outcomes.
package flight

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
)

// airlineNames maps the carrier codes the vendor returns to display
// names; unknown codes render as-is.
var airlineNames = map[string]string{
	"VN": "Vietnam Airlines",
	"VJ": "Vietjet Air",
	"QH": "Bamboo Airways",
	"VU": "Vietravel Airlines",
	"BL": "Pacific Airlines",
}

// FormatResults renders the merged search outcome as a chat reply,
// showing at most PageSize offers ordered by price.
func FormatResults(params conversation.SearchParams, res AggregateResult) string {
	var b strings.Builder

	route := fmt.Sprintf("%s → %s", params.Origin, params.Destination)
	if params.TripType == "roundtrip" {
		route += fmt.Sprintf(" (khứ hồi, về %s)", displayDate(params.ReturnDate))
	}
	fmt.Fprintf(&b, "✈️ **Tìm thấy %d chuyến bay %s ngày %s**\n",
		res.TotalResults, route, displayDate(params.DepartureDate))

	shown := res.Flights
	if len(shown) > PageSize {
		shown = shown[:PageSize]
	}
	for i, f := range shown {
		b.WriteString("\n")
		if len(f.Segments) > 0 {
			seg := f.Segments[0]
			fmt.Fprintf(&b, "**%d. %s %s — %s**\n", i+1, seg.Airline, seg.FlightNumber, airlineName(seg.Airline))
			fmt.Fprintf(&b, "   🕐 %s → %s", seg.DepartureTime, seg.ArrivalTime)
			if seg.Duration != "" {
				fmt.Fprintf(&b, " (%s)", seg.Duration)
			}
			b.WriteString("\n")
			if len(f.Segments) > 1 {
				fmt.Fprintf(&b, "   🔁 %d chặng\n", len(f.Segments))
			}
		} else {
			fmt.Fprintf(&b, "**%d. (nguồn %s)**\n", i+1, f.Source)
		}
		fmt.Fprintf(&b, "   💰 %s", f.Price().Display())
		if f.CabinClass != "" {
			fmt.Fprintf(&b, " — %s", f.CabinClass)
		}
		b.WriteString("\n")
	}

	if res.HasMore {
		fmt.Fprintf(&b, "\n_Còn %d chuyến khác phù hợp._\n", res.TotalResults-PageSize)
	}
	if len(res.FailedSources) > 0 {
		fmt.Fprintf(&b, "\n⚠️ Một số nguồn tạm thời không phản hồi (%s), kết quả có thể chưa đầy đủ.\n",
			strings.Join(res.FailedSources, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatNoResults renders the no-offers outcome, distinguishing "all
// sources answered but found nothing" from "nothing answered at all".
func FormatNoResults(params conversation.SearchParams, res AggregateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "😔 Không tìm thấy chuyến bay %s → %s ngày %s.",
		params.Origin, params.Destination, displayDate(params.DepartureDate))
	if len(res.FailedSources) > 0 {
		fmt.Fprintf(&b, "\n\n⚠️ Một số nguồn tạm thời không phản hồi (%s). Vui lòng thử lại sau ít phút.",
			strings.Join(res.FailedSources, ", "))
	} else {
		b.WriteString("\n\nBạn thử đổi ngày bay hoặc sân bay lân cận xem sao nhé.")
	}
	return b.String()
}

// FormatSuggestions asks the user to narrow a country mention down to
// one airport.
func FormatSuggestions(suggestions []conversation.CountrySuggestion) string {
	var b strings.Builder
	b.WriteString("🌏 Bạn muốn bay đến sân bay nào?\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "\n**%s:**\n", titleCase(s.Country))
		for _, a := range s.Airports {
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}
	b.WriteString("\nVui lòng chọn một mã sân bay (ví dụ: ICN) để tôi tìm vé giúp bạn.")
	return b.String()
}

// FormatMissing prompts for the parameters still needed before a
// search can run.
func FormatMissing(missing []string) string {
	labels := map[string]string{
		"origin":         "điểm đi",
		"destination":    "điểm đến",
		"departure_date": "ngày đi",
		"return_date":    "ngày về",
	}
	var parts []string
	for _, m := range missing {
		if l, ok := labels[m]; ok {
			parts = append(parts, l)
		} else {
			parts = append(parts, m)
		}
	}
	return fmt.Sprintf("Để tìm vé, bạn cho tôi biết thêm: **%s** nhé.\n\n"+
		"Ví dụ: \"Tìm vé SGN đi HAN ngày 25/12\"", strings.Join(parts, ", "))
}

// displayDate converts YYYY-MM-DD to the DD/MM/YYYY form Vietnamese
// readers expect; anything else passes through unchanged.
func displayDate(iso string) string {
	p := strings.SplitN(iso, "-", 3)
	if len(p) != 3 {
		return iso
	}
	return fmt.Sprintf("%s/%s/%s", p[2], p[1], p[0])
}

func airlineName(code string) string {
	if n, ok := airlineNames[code]; ok {
		return n
	}
	return code
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
