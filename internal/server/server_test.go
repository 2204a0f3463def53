package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keigo1110/wordtree/internal/lookup"
	"github.com/keigo1110/wordtree/internal/translator"
)

type stubLookup struct {
	response *lookup.Response
	err      error
}

func (s *stubLookup) Handle(ctx context.Context, word string, includeEtymology bool) (*lookup.Response, error) {
	if word == "" {
		return nil, lookup.ErrEmptyWord
	}
	return s.response, s.err
}

type stubTranslator struct{}

func (s *stubTranslator) Translate(query, source string) (*translator.Result, error) {
	if source != "" && source != "en" && source != "ja" {
		return nil, fmt.Errorf("unsupported source language: %s", source)
	}
	if source == "" {
		source = "en"
	}
	return &translator.Result{
		Query:        query,
		Source:       source,
		Translations: map[string]string{"ja": "自由"},
		Timestamp:    time.Now(),
	}, nil
}

func newTestServer(lookups lookupHandler) *Server {
	return New(lookups, &stubTranslator{}, []string{"*"}, slog.Default())
}

func TestServer_handleLookup(t *testing.T) {
	t.Run("returns the assembled response", func(t *testing.T) {
		stub := &stubLookup{response: &lookup.Response{
			Dictionary: &lookup.DictionaryResult{
				Word:     "freedom",
				Meanings: []lookup.Meaning{{PartOfSpeech: "n", Definitions: []lookup.Definition{{Definition: "the condition of being free"}}}},
			},
		}}
		server := newTestServer(stub)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lookup?word=freedom", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var response lookup.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.NotNil(t, response.Dictionary)
		assert.Equal(t, "freedom", response.Dictionary.Word)
		assert.Nil(t, response.Synonyms)
	})

	t.Run("missing word is a client error", func(t *testing.T) {
		server := newTestServer(&stubLookup{})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lookup", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "required")
	})

	t.Run("total failure is a server error", func(t *testing.T) {
		server := newTestServer(&stubLookup{err: lookup.ErrAllLookupsFailed})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lookup?word=freedom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("unexpected errors are a generic server error", func(t *testing.T) {
		server := newTestServer(&stubLookup{err: fmt.Errorf("boom")})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lookup?word=freedom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
	})
}

func TestServer_handleTranslate(t *testing.T) {
	server := newTestServer(&stubLookup{})

	t.Run("translates a phrase", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(`{"q":"freedom","src":"en"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var result translator.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "freedom", result.Query)
		assert.Equal(t, "自由", result.Translations["ja"])
	})

	t.Run("missing query is a client error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(`{"src":"en"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsupported source language is a client error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(`{"q":"hello","src":"xx"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unsupported source language")
	})
}
