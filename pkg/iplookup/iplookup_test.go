package iplookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goliatone/go-quoteform/pkg/iplookup"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "address",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("format") != "json" {
					t.Errorf("expected json format query, got %q", r.URL.RawQuery)
				}
				_, _ = w.Write([]byte(`{"ip":"198.51.100.23"}`))
			},
			want: "198.51.100.23",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			want: iplookup.Unknown,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			want: iplookup.Unknown,
		},
		{
			name: "missing ip",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			want: iplookup.Unknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			resolver := iplookup.New(iplookup.WithURL(srv.URL + "/?format=json"))
			if got := resolver.Lookup(context.Background()); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLookup_TimeoutYieldsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	resolver := iplookup.New(iplookup.WithURL(srv.URL), iplookup.WithTimeout(20*time.Millisecond))
	if got := resolver.Lookup(context.Background()); got != iplookup.Unknown {
		t.Fatalf("expected unknown on timeout, got %q", got)
	}
}

func TestLookup_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if got := iplookup.New(iplookup.WithURL(url)).Lookup(context.Background()); got != iplookup.Unknown {
		t.Fatalf("expected unknown, got %q", got)
	}
}
