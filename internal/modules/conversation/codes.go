// README: Entity extraction shared by domain handlers: booking codes, ticket numbers, seats, contacts.
package conversation

import (
	"regexp"
	"strings"
)

var (
	bookingCodePattern  = regexp.MustCompile(`\b[A-Z0-9]{6}\b`)
	ticketNumberPattern = regexp.MustCompile(`\b\d{13}\b`)
	seatPattern         = regexp.MustCompile(`\b(\d{1,2}[A-K])\b`)
	emailPattern        = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern        = regexp.MustCompile(`(\+84|0)\d{9,10}\b`)
)

// ExtractBookingCode finds a 6-character PNR code in the message.
// Pure-digit candidates are skipped so phone fragments and dates do
// not pass as booking codes.
func ExtractBookingCode(msg string) string {
	upper := strings.ToUpper(msg)
	for _, m := range bookingCodePattern.FindAllString(upper, -1) {
		if strings.IndexFunc(m, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0 {
			return m
		}
	}
	return ""
}

// ExtractTicketNumber finds a 13-digit e-ticket number.
func ExtractTicketNumber(msg string) string {
	return ticketNumberPattern.FindString(msg)
}

// ExtractSeat finds a seat designator like 12A or 3F.
func ExtractSeat(msg string) string {
	m := seatPattern.FindStringSubmatch(strings.ToUpper(msg))
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractEmail finds an email address.
func ExtractEmail(msg string) string {
	return emailPattern.FindString(msg)
}

// ExtractPhone finds a Vietnamese phone number (0… or +84…).
func ExtractPhone(msg string) string {
	return phonePattern.FindString(msg)
}
