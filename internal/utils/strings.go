package utils

import "strings"

// BearerToken returns the credential part of an Authorization header value.
// "Bearer abc" and a bare "abc" both yield "abc".
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) >= 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	if len(parts) == 1 && !strings.EqualFold(parts[0], "bearer") {
		return parts[0]
	}
	return ""
}
