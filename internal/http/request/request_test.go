package request

import (
	"net/http"
	"testing"
)

func TestFindClientIP(t *testing.T) {
	scenarios := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote address", nil, "192.168.0.1:4242", "192.168.0.1"},
		{"ipv6 zone", nil, "[fe80::1%eth0]:4242", "fe80::1"},
		{"unix socket", nil, "@", "127.0.0.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "10.0.0.1:80", "203.0.113.195"},
		{"real ip", map[string]string{"X-Real-Ip": "203.0.113.7"}, "10.0.0.1:80", "203.0.113.7"},
		{"invalid header", map[string]string{"X-Forwarded-For": "not-an-ip"}, "10.0.0.1:80", "10.0.0.1"},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			r := &http.Request{RemoteAddr: s.remoteAddr, Header: http.Header{}}
			for k, v := range s.headers {
				r.Header.Set(k, v)
			}
			if got := FindClientIP(r); got != s.want {
				t.Errorf(`Unexpected client IP, got %q instead of %q`, got, s.want)
			}
		})
	}
}

func TestContextValues(t *testing.T) {
	r, err := http.NewRequest("GET", "/catalog.xml", nil)
	if err != nil {
		t.Fatal(err)
	}
	r.RemoteAddr = "10.0.0.1:80"

	if got := ClientIP(r); got != "10.0.0.1" {
		t.Errorf(`Expected the header fallback, got %q`, got)
	}

	r = WithValues(r, "203.0.113.7", "req-1")
	if got := ClientIP(r); got != "203.0.113.7" {
		t.Errorf(`Unexpected client IP, got %q`, got)
	}
	if got := RequestID(r); got != "req-1" {
		t.Errorf(`Unexpected request id, got %q`, got)
	}
}

func TestQueryStringParam(t *testing.T) {
	r, err := http.NewRequest("GET", "/catalog.html?q=+tom+&device=", nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := QueryStringParam(r, "q", ""); got != "tom" {
		t.Errorf(`Unexpected value, got %q`, got)
	}
	if got := QueryStringParam(r, "device", "none"); got != "none" {
		t.Errorf(`Blank parameter should use the default, got %q`, got)
	}
	if got := QueryStringParam(r, "provider", "IA"); got != "IA" {
		t.Errorf(`Missing parameter should use the default, got %q`, got)
	}
}
