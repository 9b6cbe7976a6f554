package request

import "strings"

// ClientType distinguishes browser clients, which get httpOnly cookies, from
// API clients, which carry tokens in the response body only.
type ClientType string

const (
	ClientWeb ClientType = "web"
	ClientAPI ClientType = "api"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls back
// to sniffing the User-Agent.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToLower(header) {
	case "web":
		return ClientWeb
	case "api", "mobile":
		return ClientAPI
	}
	if strings.Contains(userAgent, "Mozilla") {
		return ClientWeb
	}
	return ClientAPI
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
