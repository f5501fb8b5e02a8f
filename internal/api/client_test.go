// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL + "/api/v1"})
	return client, srv
}

func TestSendMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/chat", r.URL.Path)

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "what is my loyalty status?", req.Message)

		json.NewEncoder(w).Encode(ChatResponse{Response: "You are **Gold**."})
	}))

	resp, err := client.SendMessage(context.Background(), "what is my loyalty status?")
	require.NoError(t, err)
	assert.Equal(t, "You are **Gold**.", resp.Response)
}

func TestSendMessageHTTPError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.SendMessage(context.Background(), "hi")
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeHTTP, clientErr.Type)
}

func TestSendMessageUnreachable(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL + "/api/v1"})

	_, err := client.SendMessage(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}

func TestSendMessageInvalidBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	_, err := client.SendMessage(context.Background(), "hi")
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeInvalidResponse, clientErr.Type)
}

func TestClearMemorySendsSessionCookie(t *testing.T) {
	var sawCookie bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/chat":
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc123"})
			json.NewEncoder(w).Encode(ChatResponse{Response: "ok"})
		case "/api/v1/chat/memory":
			require.Equal(t, http.MethodDelete, r.Method)
			if c, err := r.Cookie("JSESSIONID"); err == nil && c.Value == "abc123" {
				sawCookie = true
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	_, err := client.SendMessage(context.Background(), "hello")
	require.NoError(t, err)

	require.NoError(t, client.ClearMemory(context.Background()))
	assert.True(t, sawCookie, "clear memory should carry the session cookie")
}

func TestSearchUsersEscapesQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users/search", r.URL.Path)
		assert.Equal(t, "sm th&co", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode([]UserSummary{
			{Username: "smith", LastName: "Smith", LoyaltyStatus: "Gold", Airline: "United"},
		})
	}))

	users, err := client.SearchUsers(context.Background(), "sm th&co")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Smith", users[0].DisplayName())
}

func TestGetUserEscapesPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/j%20doe", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(UserProfile{Username: "j doe", LoyaltyStatus: "Silver"})
	}))

	profile, err := client.GetUser(context.Background(), "j doe")
	require.NoError(t, err)
	assert.Equal(t, "Silver", profile.LoyaltyStatus)
}

func TestQueryKnowledgePassesLimitThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req KnowledgeQueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "baggage policy", req.Query)
		assert.Equal(t, 5, req.Limit)

		json.NewEncoder(w).Encode(QueryResult{
			Documents: []DocumentMatch{
				{Content: "Carry-on limits...", Metadata: map[string]any{"source": "policy.md", "chunk": float64(2)}},
			},
			FormattedContext: "Carry-on limits...",
		})
	}))

	result, err := client.QueryKnowledge(context.Background(), "baggage policy", 5)
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "policy.md", result.Documents[0].Source())

	chunk, ok := result.Documents[0].Chunk()
	require.True(t, ok)
	assert.Equal(t, 2, chunk)
}

func TestGetProviderInfo(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/ai-provider", r.URL.Path)
		json.NewEncoder(w).Encode(ProviderInfo{Provider: "OpenAI", Model: "gpt-4o-mini"})
	}))

	info, err := client.GetProviderInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", info.Provider)
	assert.Equal(t, "gpt-4o-mini", info.Model)
}

func TestDocumentMatchMetadata(t *testing.T) {
	doc := DocumentMatch{
		Content: "text",
		Metadata: map[string]any{
			"source":   "faq.md",
			"filename": "faq.md",
			"type":     "markdown",
			"score":    0.87,
			"airline":  "Delta",
		},
	}

	assert.Equal(t, "faq.md", doc.Source())
	assert.Equal(t, "markdown", doc.DocType())

	extra := doc.ExtraMetadata()
	require.Len(t, extra, 2, "source/filename/type must be excluded")
	assert.Equal(t, "airline", extra[0].Key)
	assert.Equal(t, "score", extra[1].Key)

	bare := DocumentMatch{Content: "x", Metadata: map[string]any{}}
	assert.Equal(t, "Unknown source", bare.Source())
	_, ok := bare.Chunk()
	assert.False(t, ok)
}

func TestUserProfileInitials(t *testing.T) {
	tests := []struct {
		name    string
		profile UserProfile
		want    string
	}{
		{"from last name", UserProfile{Username: "jsmith", LastName: "Smith"}, "SM"},
		{"from username when no last name", UserProfile{Username: "jsmith"}, "JS"},
		{"single rune", UserProfile{Username: "x"}, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Initials())
		})
	}
}
