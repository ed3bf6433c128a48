package http

import (
	"net"
	"net/http"
	"strings"
)

const (
	headerRequestID    = "x-request-id"
	headerContentType  = "content-type"
	headerForwardedFor = "x-forwarded-for"
	headerRealIP       = "x-real-ip"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerContentType))
}

// clientIP resolves the originating client address: the first hop in
// X-Forwarded-For when a proxy set it, then X-Real-IP, then the socket peer.
func clientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get(headerForwardedFor)); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get(headerRealIP)); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
