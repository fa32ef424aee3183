package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d was rejected inside the budget", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request beyond the budget was allowed")
	}

	// A different client has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("fresh client was rejected")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request was rejected")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second immediate request was allowed")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("request after the window elapsed was rejected")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		want      string
	}{
		{"x-forwarded-for wins", "203.0.113.7", "198.51.100.1", "203.0.113.7"},
		{"x-real-ip next", "", "198.51.100.1", "198.51.100.1"},
		{"remote addr fallback", "", "", "192.0.2.1:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
