package cli

import (
	"strconv"
	"time"
)

// formatPrice renders an amount in VND with dot thousand separators, the
// way the site displayed prices.
func formatPrice(amount int64) string {
	s := strconv.FormatInt(amount, 10)
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

	if neg {
		return "-" + string(out) + " VND"
	}
	return string(out) + " VND"
}

// formatDate shortens an RFC 3339 stamp for table display; anything
// unparsable is shown as-is.
func formatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format("2006-01-02 15:04")
}
