package dietclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDietByName(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.URL.Path != "/diets/low sodium" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"low sodium","cal":2000,"sodium":500,"sugar":40}`))
	}))
	defer server.Close()

	client := New(server.URL+"/", time.Second)
	diet, found, err := client.GetDietByName(context.Background(), "low sodium")

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/diets/low%20sodium", gotPath)
	assert.Equal(t, "low sodium", diet.Name)
	assert.Equal(t, 2000.0, diet.Calories)
	assert.Equal(t, 500.0, diet.Sodium)
	assert.Equal(t, 40.0, diet.Sugar)
}

func TestGetDietByNameNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, found, err := New(server.URL, time.Second).GetDietByName(context.Background(), "keto")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetDietByNameServiceFailures(t *testing.T) {
	t.Run("unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, _, err := New(server.URL, time.Second).GetDietByName(context.Background(), "keto")

		assert.ErrorIs(t, err, services.ErrDietServiceUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, _, err := New(url, time.Second).GetDietByName(context.Background(), "keto")

		assert.ErrorIs(t, err, services.ErrDietServiceUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`Diet keto`))
		}))
		defer server.Close()

		_, _, err := New(server.URL, time.Second).GetDietByName(context.Background(), "keto")

		assert.ErrorIs(t, err, services.ErrDietServiceUnavailable)
	})
}

func TestGetDietByNameUnaddressableNames(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"keto","cal":1,"sodium":1,"sugar":1}]`))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	for _, name := range []string{"", "a/b"} {
		_, found, err := client.GetDietByName(context.Background(), name)

		require.NoError(t, err, name)
		assert.False(t, found, name)
	}
	assert.Equal(t, 0, calls)
}
