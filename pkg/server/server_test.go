package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalid-nowaf/lextree/pkg/lexicon"
	"github.com/khalid-nowaf/lextree/pkg/server"
)

func TestAPI(t *testing.T) {
	tree := lexicon.NewLexicographicTree()
	_, err := tree.InsertWords("cat", "car", "dog", "l'eau", "ex-wife")
	require.NoError(t, err)

	srv := server.NewServer(":0", tree, zerolog.Nop())
	testServer := httptest.NewServer(srv.Handler())
	defer testServer.Close()

	get := func(t *testing.T, path string, into any) int {
		t.Helper()
		resp, err := http.Get(testServer.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
		return resp.StatusCode
	}

	t.Run("Size", func(t *testing.T) {
		var result struct {
			Size int `json:"size"`
		}
		assert.Equal(t, http.StatusOK, get(t, "/size", &result))
		assert.Equal(t, 5, result.Size)
	})

	t.Run("Words by prefix", func(t *testing.T) {
		var result struct {
			Prefix string   `json:"prefix"`
			Words  []string `json:"words"`
		}
		assert.Equal(t, http.StatusOK, get(t, "/words?prefix=ca", &result))
		assert.Equal(t, "ca", result.Prefix)
		assert.Equal(t, []string{"car", "cat"}, result.Words)
	})

	t.Run("All words", func(t *testing.T) {
		var result struct {
			Words []string `json:"words"`
		}
		assert.Equal(t, http.StatusOK, get(t, "/words", &result))
		assert.Equal(t, tree.GetWords(""), result.Words)
	})

	t.Run("Unknown prefix", func(t *testing.T) {
		var result struct {
			Words []string `json:"words"`
		}
		assert.Equal(t, http.StatusOK, get(t, "/words?prefix=zz", &result))
		assert.NotNil(t, result.Words, "Empty results are encoded as []")
		assert.Empty(t, result.Words)
	})

	t.Run("Words of length", func(t *testing.T) {
		var result struct {
			Length int      `json:"length"`
			Words  []string `json:"words"`
		}
		assert.Equal(t, http.StatusOK, get(t, "/words/length/3", &result))
		assert.Equal(t, 3, result.Length)
		assert.Equal(t, []string{"car", "cat", "dog"}, result.Words)
	})

	t.Run("Bad length", func(t *testing.T) {
		var result struct {
			Error string `json:"error"`
		}
		assert.Equal(t, http.StatusBadRequest, get(t, "/words/length/three", &result))
		assert.NotEmpty(t, result.Error)
	})

	t.Run("Contains", func(t *testing.T) {
		var result struct {
			Word  string `json:"word"`
			Found bool   `json:"found"`
		}
		assert.Equal(t, http.StatusOK, get(t, "/contains/l'eau", &result))
		assert.Equal(t, "l'eau", result.Word)
		assert.True(t, result.Found)

		assert.Equal(t, http.StatusOK, get(t, "/contains/ca", &result))
		assert.False(t, result.Found)
	})

	t.Run("Concurrent readers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp, err := http.Get(testServer.URL + "/words?prefix=")
				if assert.NoError(t, err) {
					resp.Body.Close()
					assert.Equal(t, http.StatusOK, resp.StatusCode)
				}
			}()
		}
		wg.Wait()
	})
}

func TestStartStopsOnCancel(t *testing.T) {
	srv := server.NewServer("127.0.0.1:0", lexicon.NewLexicographicTree(), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
