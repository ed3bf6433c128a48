package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		forwardedFor string
		realIP       string
		remoteAddr   string
		want         string
	}{
		{
			name:         "forwarded-for wins and takes the first hop",
			forwardedFor: "203.0.113.7, 10.0.0.1",
			realIP:       "198.51.100.9",
			remoteAddr:   "192.0.2.1:54321",
			want:         "203.0.113.7",
		},
		{
			name:       "real-ip is the fallback",
			realIP:     "198.51.100.9",
			remoteAddr: "192.0.2.1:54321",
			want:       "198.51.100.9",
		},
		{
			name:       "remote addr with port stripped",
			remoteAddr: "192.0.2.1:54321",
			want:       "192.0.2.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.1",
			want:       "192.0.2.1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				r.Header.Set("X-Forwarded-For", tt.forwardedFor)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}
