package etymology

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBnaryClient_Etymology(t *testing.T) {
	t.Run("returns the first binding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseForm())
			query := r.PostFormValue("query")
			assert.Contains(t, query, `ontolex:writtenRep "serendipity"@en`)
			assert.Contains(t, query, "dbnary:etymology")

			w.Header().Set("Content-Type", "application/sparql-results+json")
			_, _ = w.Write([]byte(`{"results":{"bindings":[{"ety":{"value":"From serendip + -ity."}}]}}`))
		}))
		defer server.Close()

		client := NewDBnaryClient(server.URL)
		defer func() {
			_ = client.Close()
		}()

		etymology, err := client.Etymology(context.Background(), "serendipity")
		require.NoError(t, err)
		assert.Equal(t, "From serendip + -ity.", etymology)
	})

	t.Run("no bindings is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/sparql-results+json")
			_, _ = w.Write([]byte(`{"results":{"bindings":[]}}`))
		}))
		defer server.Close()

		client := NewDBnaryClient(server.URL)
		defer func() {
			_ = client.Close()
		}()

		etymology, err := client.Etymology(context.Background(), "xylography")
		require.NoError(t, err)
		assert.Empty(t, etymology)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewDBnaryClient(server.URL)
		defer func() {
			_ = client.Close()
		}()

		_, err := client.Etymology(context.Background(), "serendipity")
		require.Error(t, err)
	})
}
