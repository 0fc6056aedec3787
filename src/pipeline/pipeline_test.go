package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"personacard/src/config"
	perrors "personacard/src/errors"
	"personacard/src/gemini"
	"personacard/src/reddit"
	"personacard/src/status"
)

const personaJSON = `{
  "persona_name": "Alex S.",
  "estimated_age": "25-35",
  "occupation": "Software Developer",
  "status": "Single",
  "likely_location": "North America",
  "archetype": "The Analyst",
  "mbti_personality": "INTJ",
  "motivations": [{"item": "Learning new tools"}],
  "behavior_habits": [{"item": "Posts late at night"}],
  "frustrations": [{"item": "Dislikes unclear instructions"}],
  "likings": [{"item": "Enjoys sci-fi plots"}],
  "goals_needs": [{"item": "Ship a side project"}]
}`

type fakeSource struct {
	submissions []reddit.ActivityItem
	comments    []reddit.ActivityItem
	err         error
}

func (f *fakeSource) Submissions(ctx context.Context, username string, limit int) ([]reddit.ActivityItem, error) {
	return f.submissions, f.err
}

func (f *fakeSource) Comments(ctx context.Context, username string, limit int) ([]reddit.ActivityItem, error) {
	return f.comments, f.err
}

type fakeModel struct {
	response string
	err      error
	prompt   string
}

func (f *fakeModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func items(kind reddit.ActivityKind, n int) []reddit.ActivityItem {
	out := make([]reddit.ActivityItem, n)
	for i := range out {
		out[i] = reddit.ActivityItem{Kind: kind, Title: "t", Text: fmt.Sprintf("%s %d", kind, i)}
	}
	return out
}

func testConfig(outputPath string) *config.Config {
	return &config.Config{
		RedditClientID: "id",
		RedditSecret:   "secret",
		GeminiAPIKey:   "key",
		Model:          config.DefaultModel,
		Limit:          50,
		OutputPath:     outputPath,
	}
}

func TestRunHappyPath(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "known_user.png")
	source := &fakeSource{
		submissions: items(reddit.KindSubmission, 3),
		comments:    items(reddit.KindComment, 2),
	}
	model := &fakeModel{response: personaJSON}
	var progress bytes.Buffer

	result, err := Run(context.Background(), testConfig(out), Deps{
		Source: source,
		Model:  model,
		Status: status.NewTestPrinter(&progress),
	}, "known_user")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Items != 5 {
		t.Errorf("Items = %d, want 5", result.Items)
	}
	if !strings.Contains(progress.String(), "Collected 5 activity items.") {
		t.Errorf("progress output missing collection line:\n%s", progress.String())
	}
	if result.Record.Name != "Alex S." {
		t.Errorf("Record.Name = %q", result.Record.Name)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected exactly one PNG at %s: %v", out, err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRunUserNotFoundWritesNothing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "card.png")
	source := &fakeSource{err: fmt.Errorf("user %q: %w", "nonexistent_user_xyz", perrors.ErrUserNotFound)}
	model := &fakeModel{response: personaJSON}

	_, err := Run(context.Background(), testConfig(out), Deps{Source: source, Model: model}, "nonexistent_user_xyz")
	if !perrors.IsUserNotFound(err) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
	if model.prompt != "" {
		t.Error("synthesizer should not run after a collector failure")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no image file may be written on failure")
	}
}

func TestRunMalformedResponseWritesNothing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "card.png")
	source := &fakeSource{submissions: items(reddit.KindSubmission, 1)}
	model := &fakeModel{response: "I am sorry, I cannot do that."}

	_, err := Run(context.Background(), testConfig(out), Deps{Source: source, Model: model}, "known_user")
	if !perrors.IsMalformedPersona(err) {
		t.Fatalf("got %v, want ErrMalformedPersona", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no image file may be written on failure")
	}
}

func TestRunEmptyActivityStillSynthesizes(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "card.png")
	model := &fakeModel{response: personaJSON}

	_, err := Run(context.Background(), testConfig(out), Deps{Source: &fakeSource{}, Model: model}, "quiet_user")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if model.prompt == "" {
		t.Fatal("synthesizer should run on empty activity")
	}
	if _, statErr := os.Stat(out); statErr != nil {
		t.Errorf("expected a card for the empty-activity persona: %v", statErr)
	}
}

func TestRunSaveRaw(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	cfg := testConfig(filepath.Join(dir, "card.png"))
	cfg.SaveRaw = true
	model := &fakeModel{response: personaJSON}

	if _, err := Run(context.Background(), cfg, Deps{Source: &fakeSource{}, Model: model}, "known_user"); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "known_user_persona_raw.txt"))
	if err != nil {
		t.Fatalf("raw output not written: %v", err)
	}
	if string(raw) != personaJSON {
		t.Error("raw output does not match the model response")
	}
}

// End-to-end through the real HTTP clients against local doubles.
func TestRunAgainstHTTPDoubles(t *testing.T) {
	t.Parallel()

	redditSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"title": "a post", "selftext": "body",
			"permalink": "/r/test/1", "created_utc": 1700000000.0,
		}
		if r.URL.Path == "/user/known_user/comments" {
			data = map[string]interface{}{"body": "a comment", "permalink": "/r/test/2", "created_utc": 1700000001.0}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"after":    "",
				"children": []map[string]interface{}{{"data": data}},
			},
		})
	}))
	t.Cleanup(redditSrv.Close)

	geminiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gemini.Response{
			Candidates: []gemini.Candidate{{
				Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: personaJSON}}},
			}},
		})
	}))
	t.Cleanup(geminiSrv.Close)

	source := reddit.NewClient("id", "secret", config.UserAgent,
		reddit.WithBaseURL(redditSrv.URL),
		reddit.WithHTTPClient(redditSrv.Client()),
	)
	model := gemini.NewClient("key", config.DefaultModel, gemini.WithBaseURL(geminiSrv.URL))

	out := filepath.Join(t.TempDir(), "known_user_persona_card.png")
	result, err := Run(context.Background(), testConfig(out), Deps{Source: source, Model: model}, "known_user")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Items != 2 {
		t.Errorf("Items = %d, want 2", result.Items)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("card not written: %v", err)
	}
}
