// README: Free-text flight parameter extraction: routes, airports, dates, pax, trip type.
package supervisor

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/sftech"
)

var (
	// Route shorthand like "sg-hn" is the least ambiguous signal and
	// resolves before anything else.
	routePattern = regexp.MustCompile(`(sg|hn|dn|sgn|han|dad|hcm)[\s\-]+(sg|hn|dn|sgn|han|dad|hcm)`)

	// "CAN" (Guangzhou) is deliberately absent: it collides with the
	// English word in almost every message that contains it.
	iataPattern = regexp.MustCompile(`\b(SGN|HAN|DAD|CXR|PQC|DLI|HUI|HPH|UIH|VCA|BMV|BKK|SIN|ICN|PUS|NRT|HND|KIX|NGO|HKG|TPE|KHH|KUL|PEN|MNL|CEB|CGK|DPS|CNX|HKT|PEK|PVG|SZX|CDG|NCE|LHR|LGW|SYD|MEL|BNE|LAX|JFK|SFO)\b`)

	dmyPattern     = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	ymdPattern     = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)
	ngayDMYPattern = regexp.MustCompile(`ngày\s*(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	dmPattern      = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)

	paxPattern = regexp.MustCompile(`(\d+)\s*(người lớn|người|nguoi|khách|khach|pax)`)
)

// originCues and destCues are checked in a short context window before
// a matched city name.
var originCues = []string{"từ ", "tu ", "đi từ", "di tu", "khởi hành", "xuất phát"}
var destCues = []string{"đi ", "di ", "đến ", "den ", "tới ", "ra ", "vào "}

var roundtripCues = []string{"khứ hồi", "khu hoi", "roundtrip", "round trip", "về"}

// Extract parses flight-search parameters out of free text relative to
// the current wall clock.
func Extract(message string) conversation.SearchParams {
	return ExtractAt(message, time.Now())
}

// ExtractAt is Extract with an injected reference time, per-field
// first-match-wins. Unresolved fields stay empty for the caller to
// prompt about.
func ExtractAt(message string, now time.Time) conversation.SearchParams {
	msg := strings.ToLower(message)
	var p conversation.SearchParams

	// Route shorthand fixes both endpoints at once.
	if m := routePattern.FindStringSubmatch(msg); m != nil {
		origin, okO := routeAbbrevs[m[1]]
		dest, okD := routeAbbrevs[m[2]]
		if okO && okD {
			p.Origin = origin
			p.Destination = dest
		}
	}

	// Explicit IATA codes.
	if p.Origin == "" || p.Destination == "" {
		codes := iataPattern.FindAllString(strings.ToUpper(message), -1)
		switch {
		case len(codes) >= 2:
			p.Origin = codes[0]
			p.Destination = codes[1]
		case len(codes) == 1:
			if p.Origin == "" {
				p.Origin = codes[0]
			} else if p.Destination == "" {
				p.Destination = codes[0]
			}
		}
	}

	// City names with preposition context.
	if p.Origin == "" || p.Destination == "" {
		for _, c := range findCities(msg) {
			before := msg[:c.idx]
			switch {
			case hasCue(tail(before, 15), originCues) && p.Origin == "":
				p.Origin = c.code
			case hasCue(tail(before, 10), destCues) && p.Destination == "":
				p.Destination = c.code
			case p.Origin == "":
				p.Origin = c.code
			case p.Destination == "":
				p.Destination = c.code
			}
		}
	}

	// Country-level fallback: suggestions instead of a resolved code.
	if p.Destination == "" {
		p.Suggestions = countrySuggestions(msg)
	}

	p.DepartureDate = extractDate(message, msg, now)

	if m := paxPattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			p.Adults = n
		}
	}
	if p.Adults == 0 {
		p.Adults = 1
	}

	if hasCue(msg, roundtripCues) {
		p.TripType = sftech.TripRoundtrip
		p.ReturnDate = extractReturnDate(message, now)
	} else {
		p.TripType = sftech.TripOneway
	}

	return p
}

type cityMatch struct {
	idx  int
	name string
	code string
}

// findCities locates every known city name in the message, ordered by
// character offset. Short inherently ambiguous tokens are excluded
// here; they resolve only through the route-pattern and IATA rules.
func findCities(msg string) []cityMatch {
	var found []cityMatch
	for name, code := range airportCodes {
		if ambiguousCityTokens[name] {
			continue
		}
		if idx := strings.Index(msg, name); idx != -1 {
			found = append(found, cityMatch{idx: idx, name: name, code: code})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].idx != found[j].idx {
			return found[i].idx < found[j].idx
		}
		// Same offset means one name prefixes another ("hà nội" vs a
		// shorter alias); prefer the longer, more specific match.
		return len(found[i].name) > len(found[j].name)
	})
	return found
}

func countrySuggestions(msg string) []conversation.CountrySuggestion {
	type match struct {
		country  string
		airports []string
	}
	var matches []match
	for country, airports := range countryAirports {
		if strings.Contains(msg, country) {
			matches = append(matches, match{country, airports})
		}
	}
	// Longest names first so "hàn quốc" wins over its substring "hàn".
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i].country) != len(matches[j].country) {
			return len(matches[i].country) > len(matches[j].country)
		}
		return matches[i].country < matches[j].country
	})

	var out []conversation.CountrySuggestion
	for _, m := range matches {
		contained := false
		for _, kept := range out {
			if strings.Contains(kept.Country, m.country) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, conversation.CountrySuggestion{Country: m.country, Airports: m.airports})
		}
	}
	return out
}

// relativeDates is ordered: earlier entries win, so "ngày mai" is
// tried before the bare "mai" it contains.
var relativeDates = []struct {
	keyword string
	days    int
}{
	{"hôm nay", 0}, {"hom nay", 0}, {"today", 0},
	{"ngày mai", 1}, {"ngay mai", 1}, {"mai", 1}, {"tomorrow", 1},
	{"ngày kia", 2}, {"ngay kia", 2}, {"mốt", 2}, {"mot", 2},
	{"tuần sau", 7}, {"tuan sau", 7}, {"next week", 7},
	{"cuối tuần", -1}, {"cuoi tuan", -1}, // -1: computed as next Saturday
}

func extractDate(original, msg string, now time.Time) string {
	for _, rd := range relativeDates {
		if !strings.Contains(msg, rd.keyword) {
			continue
		}
		days := rd.days
		if days == -1 {
			days = daysToSaturday(now)
		}
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}

	if m := dmyPattern.FindStringSubmatch(original); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	if m := ymdPattern.FindStringSubmatch(original); m != nil {
		return isoDate(m[1], m[2], m[3])
	}
	if m := ngayDMYPattern.FindStringSubmatch(original); m != nil {
		return isoDate(m[3], m[2], m[1])
	}
	if m := dmPattern.FindStringSubmatch(original); m != nil {
		return dmToISO(m[1], m[2], now)
	}
	return ""
}

// extractReturnDate takes the second explicit date in the message as
// the return date of a roundtrip. Relative keywords never describe the
// return leg, so only explicit forms are considered.
func extractReturnDate(original string, now time.Time) string {
	if ms := dmyPattern.FindAllStringSubmatch(original, -1); len(ms) >= 2 {
		m := ms[1]
		return isoDate(m[3], m[2], m[1])
	}
	if ms := dmPattern.FindAllStringSubmatch(original, -1); len(ms) >= 2 {
		m := ms[1]
		return dmToISO(m[1], m[2], now)
	}
	return ""
}

func dmToISO(dayStr, monthStr string, now time.Time) string {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	target := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	// A bare DD/MM that already passed this year means next year.
	if target.Before(now) {
		target = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, now.Location())
	}
	return target.Format("2006-01-02")
}

func isoDate(year, month, day string) string {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// daysToSaturday computes the offset to the coming Saturday; on a
// Saturday it returns the following one.
func daysToSaturday(now time.Time) int {
	// Weekday with Monday=0 so Saturday is 5.
	wd := (int(now.Weekday()) + 6) % 7
	d := ((5-wd)%7 + 7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

func hasCue(s string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(s, c) {
			return true
		}
	}
	return false
}

// tail returns the last n bytes of s. Cutting mid-rune is acceptable
// here: cue words are matched by substring, never at the cut edge in
// practice.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
