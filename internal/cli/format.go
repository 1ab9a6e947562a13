package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FormatCurrency formats a dollar amount with thousands separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := groupThousands(parts[0])

	result := "$" + intPart + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	return groupThousands(s[:n-3]) + "," + s[n-3:]
}

// FormatPnL formats a profit/loss amount with an explicit sign.
func FormatPnL(pnl float64) string {
	formatted := FormatCurrency(pnl)
	if pnl >= 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatPercent formats a whole-number percentage.
func FormatPercent(value int) string {
	return fmt.Sprintf("%d%%", value)
}

// FormatEngagement formats an engagement rate with one decimal place.
func FormatEngagement(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// FormatFollowers formats a follower count in compact form.
func FormatFollowers(count int) string {
	if count >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(count)/1000000)
	}
	if count >= 1000 {
		return fmt.Sprintf("%.1fk", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}

// FormatDate formats a date for display.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// TruncateString truncates a string to maxLen, appending "..." when cut.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var durationPattern = regexp.MustCompile(`^\d{1,3}:[0-5]\d$`)

// ValidDuration reports whether s is a valid mm:ss duration label.
func ValidDuration(s string) bool {
	return durationPattern.MatchString(s)
}
