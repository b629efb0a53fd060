package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNinjasClientLookup(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"apple","calories":47,"serving_size_g":100,"sodium_mg":1,"sugar_g":10.3},
			{"name":"pie","calories":42,"serving_size_g":100,"sodium_mg":201,"sugar_g":3.5}
		]`))
	}))
	defer server.Close()

	client := NewNinjasClient(server.URL, "test-key", time.Second)
	records, err := client.Lookup(context.Background(), "apple pie")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "apple pie", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, 47.0, records[0].Calories)
	assert.Equal(t, 201.0, records[1].SodiumMg)
}

func TestNinjasClientUnrecognizedName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	records, err := NewNinjasClient(server.URL, "k", time.Second).Lookup(context.Background(), "blah")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNinjasClientUpstreamFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Invalid API Key."}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewNinjasClient(server.URL, "k", time.Second).Lookup(context.Background(), "orange")

			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestNinjasClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewNinjasClient(url, "k", time.Second).Lookup(context.Background(), "orange")

	assert.ErrorIs(t, err, ErrUnavailable)
}
