package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid checks address syntax and requires a dotted domain. DNS is
// deliberately not consulted so registration never blocks on a lookup.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
