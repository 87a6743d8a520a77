package utils

import "strings"

// NormalizePhone ensures a phone number carries a leading "+".
func NormalizePhone(phone string) string {
	p := strings.TrimSpace(phone)
	if p == "" {
		return p
	}
	if !strings.HasPrefix(p, "+") {
		p = "+" + p
	}
	return p
}

// StripWhatsAppPrefix removes the "whatsapp:" scheme and the leading "+"
// from a Twilio-formatted address such as "whatsapp:+905551112233".
func StripWhatsAppPrefix(addr string) string {
	p := strings.TrimPrefix(strings.TrimSpace(addr), "whatsapp:")
	return strings.TrimPrefix(p, "+")
}
