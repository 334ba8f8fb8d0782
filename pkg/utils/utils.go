package utils

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// ContainsString checks if a slice of strings contains a specific string.
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

func CleanToValidUTF8(s string) string {
	var buf bytes.Buffer
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		buf.WriteRune(r)
		i += size
	}
	return buf.String()
}

// SafeText drops invalid UTF-8 and surrounding whitespace. The text is
// otherwise forwarded exactly as typed.
func SafeText(text string) string {
	return strings.TrimSpace(CleanToValidUTF8(text))
}

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FormatPercentage renders an unsigned two-decimal percentage, e.g. 1.23%.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", math.Abs(value))
}

// FormatUSD renders value the way en-US currency formatting does, e.g. $64,230.50.
func FormatUSD(value float64) string {
	if value < 0 {
		return usdPrinter.Sprintf("-$%.2f", -value)
	}
	return usdPrinter.Sprintf("$%.2f", value)
}

// FormatVolume renders the simulated volume label derived from price.
func FormatVolume(price float64) string {
	return fmt.Sprintf("%.1fM", price/100)
}
