package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/log"
)

func newGeminiServer(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGemini(context.Background(), config.AIConfig{
		APIKey:   "test-key",
		Model:    "gemini-test",
		Endpoint: srv.URL + "/",
	}, log.Discard())
	require.NoError(t, err)
	return g
}

func TestGemini_Generate(t *testing.T) {
	var gotPath, gotPrompt, gotKey string
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		_ = json.Unmarshal(body, &req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"  Food \n"}]}}]}`)
	})

	text, err := g.Generate(context.Background(), "categorize: zomato")
	require.NoError(t, err)
	assert.Equal(t, "  Food \n", text)
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-test:generateContent"), gotPath)
	assert.Equal(t, "categorize: zomato", gotPrompt)
	assert.Equal(t, "test-key", gotKey)
}

func TestGemini_KeepsMultilineAnswerAsWritten(t *testing.T) {
	answer := "- Cut food delivery by ₹500.\n- Move rent day earlier.\n- Track card spends weekly.\n"
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": "   "}}}},
				map[string]any{"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": answer}}}},
			},
		})
	})

	text, err := g.Generate(context.Background(), "coach me")
	require.NoError(t, err)
	assert.Equal(t, answer, text)
}

func TestGemini_UpstreamError(t *testing.T) {
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":{"code":503,"message":"model overloaded","status":"UNAVAILABLE"}}`)
	})

	_, err := g.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestGemini_EmptyCandidates(t *testing.T) {
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := g.Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGemini_ContextTimeout(t *testing.T) {
	g := newGeminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx, "hello")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), config.AIConfig{Model: "gemini-2.5-flash"}, log.Discard())
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	ok := Probe(context.Background(), &Static{Text: "Gemini API is working!"}, time.Second, log.Discard())
	assert.True(t, ok)

	ok = Probe(context.Background(), Offline{}, time.Second, log.Discard())
	assert.False(t, ok)
}

func TestStatic_RecordsPrompts(t *testing.T) {
	s := &Static{Text: "ok"}
	_, _ = s.Generate(context.Background(), "one")
	_, _ = s.Generate(context.Background(), "two")
	assert.Equal(t, []string{"one", "two"}, s.Prompts())

	failing := &Static{Err: ErrUpstreamUnavailable}
	_, err := failing.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}
