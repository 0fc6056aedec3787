package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perrors "personacard/src/errors"
)

func candidateResponse(texts ...string) Response {
	parts := make([]Part, len(texts))
	for i, text := range texts {
		parts[i] = Part{Text: text}
	}
	return Response{
		Candidates: []Candidate{
			{Content: Content{Role: "model", Parts: parts}, FinishReason: "STOP"},
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gemini-1.5-pro:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("x-goog-api-key = %q", got)
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "who is this user" {
			t.Errorf("unexpected contents: %+v", req.Contents)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Error("request did not constrain the response to JSON")
		}

		json.NewEncoder(w).Encode(candidateResponse(`{"answer":`, `true}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key", "gemini-1.5-pro", WithBaseURL(server.URL))
	text, err := client.GenerateJSON(context.Background(), "who is this user")
	if err != nil {
		t.Fatalf("GenerateJSON() error: %v", err)
	}
	if text != `{"answer":true}` {
		t.Errorf("text = %q", text)
	}
}

func TestGenerateJSONAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key", "gemini-1.5-pro", WithBaseURL(server.URL))
	_, err := client.GenerateJSON(context.Background(), "prompt")

	apiErr, ok := perrors.IsAPIError(err)
	if !ok {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Service != "gemini" || apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestGenerateJSONNoCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp Response
	}{
		{name: "no candidates", resp: Response{}},
		{name: "empty candidate text", resp: candidateResponse("  ")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.resp)
			}))
			t.Cleanup(server.Close)

			client := NewClient("test-key", "gemini-1.5-pro", WithBaseURL(server.URL))
			_, err := client.GenerateJSON(context.Background(), "prompt")
			if !perrors.IsMalformedPersona(err) {
				t.Errorf("got %v, want ErrMalformedPersona", err)
			}
		})
	}
}
