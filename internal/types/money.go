// README: Common money value object used across modules.
package types

import "strconv"

type Money struct {
	Amount   int64
	Currency string
}

// Display renders the amount with dot thousands separators, the way
// Vietnamese fare amounts are shown ("1.250.000 VND").
func (m Money) Display() string {
	s := strconv.FormatInt(m.Amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	res := string(out)
	if neg {
		res = "-" + res
	}
	if m.Currency != "" {
		res += " " + m.Currency
	}
	return res
}
