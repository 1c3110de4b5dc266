// internal/app/system/inputval/inputval.go
package inputval

import "strings"

// IsValidEmail checks the basic local@domain shape without pulling in a full
// RFC 5322 parser. Single-label domains are accepted (useful for dev/test
// mailservers); display-name forms, whitespace, and dot abuse are not.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	local, domain := email[:at], email[at+1:]
	if !validDotAtom(local) || !validDotAtom(domain) {
		return false
	}
	for _, r := range email {
		switch {
		case r == ' ' || r == '\t' || r == '<' || r == '>' || r == ',':
			return false
		case r > 127:
			return false
		}
	}
	// Exactly one @ overall.
	return strings.Count(email, "@") == 1
}

// validDotAtom rejects leading/trailing dots and consecutive dots.
func validDotAtom(s string) bool {
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	return !strings.Contains(s, "..")
}

// NormalizePhone strips the separators people type into phone numbers
// (spaces, dashes, dots, parentheses) and keeps a leading plus.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separator, dropped
		default:
			// Keep unexpected characters so validation can reject them.
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone accepts 8 to 15 digits with an optional leading +. Call
// NormalizePhone first when the input may contain separators.
func IsValidPhone(phone string) bool {
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 8 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
