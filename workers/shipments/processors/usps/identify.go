package usps

import "strings"

// Identify reports whether number has the shape of a USPS tracking number.
//
// Recognised shapes are 13 characters (2 letters, 7 digits, 2 free
// characters, 2 letters), 20 digits with a leading 0, and 22 digits with a
// leading 9 that is not 96.
func Identify(number string) bool {
	switch len(number) {
	case 13:
		return isAlpha(number[0:2]) && isDigits(number[2:9]) && isAlpha(number[11:13])
	case 20:
		return isDigits(number) && strings.HasPrefix(number, "0")
	case 22:
		return isDigits(number) && strings.HasPrefix(number, "9") && !strings.HasPrefix(number, "96")
	default:
		return false
	}
}

// Validate always accepts. USPS check-digit validation is not performed.
func Validate(string) bool {
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
