package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avelinak/tool-endpoint-service/internal/client"
	"github.com/avelinak/tool-endpoint-service/internal/models"
	"github.com/avelinak/tool-endpoint-service/internal/snippets"
	"github.com/avelinak/tool-endpoint-service/internal/weather"
)

type stubGeocoder struct {
	coords models.Coordinates
	err    error
}

func (s *stubGeocoder) Resolve(ctx context.Context, query string) (models.Coordinates, error) {
	return s.coords, s.err
}

type stubFetcher struct {
	obs models.RawObservation
	err error
}

func (s *stubFetcher) Fetch(ctx context.Context, latitude, longitude float64) (models.RawObservation, error) {
	return s.obs, s.err
}

type failingStore struct{ err error }

func (f *failingStore) Get(ctx context.Context, name string) (string, bool, error) {
	return "", false, f.err
}

func (f *failingStore) Save(ctx context.Context, name, content string) error {
	return f.err
}

func newTestCatalog(t *testing.T) *Registry {
	t.Helper()
	svc := weather.NewService(&stubGeocoder{err: client.ErrLocationNotFound}, &stubFetcher{})
	return NewCatalog(svc, snippets.NewInMemoryStore())
}

func TestCatalog_ListsAllTools(t *testing.T) {
	catalog := newTestCatalog(t)
	want := []string{
		HelloName, GetSnippetName, SaveSnippetName,
		SummarizeSnippetName, GetWeatherName, GetWeatherWidgetName,
	}

	defs := catalog.Definitions()
	if len(defs) != len(want) {
		t.Fatalf("Definitions() returned %d tools, want %d", len(defs), len(want))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("Definitions()[%d] = %q, want %q", i, defs[i].Name, name)
		}
	}
}

func TestHello(t *testing.T) {
	catalog := newTestCatalog(t)
	result, err := catalog.Invoke(context.Background(), HelloName, nil)
	if err != nil {
		t.Fatalf("Invoke(hello) unexpected error: %v", err)
	}
	greeting, ok := result.(string)
	if !ok || greeting == "" {
		t.Errorf("Invoke(hello) = %v, want non-empty greeting string", result)
	}
}

func TestSnippetTools_MissingArguments(t *testing.T) {
	catalog := newTestCatalog(t)
	tests := []struct {
		name string
		tool string
		args map[string]string
		want string
	}{
		{
			name: "get without name",
			tool: GetSnippetName,
			args: nil,
			want: MsgNoSnippetName,
		},
		{
			name: "save without name",
			tool: SaveSnippetName,
			args: map[string]string{"snippet": "content"},
			want: MsgNoSnippetName,
		},
		{
			name: "save without content",
			tool: SaveSnippetName,
			args: map[string]string{"snippetname": "x"},
			want: MsgNoSnippetContent,
		},
		{
			name: "summarize without name",
			tool: SummarizeSnippetName,
			args: map[string]string{},
			want: MsgNoSnippetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := catalog.Invoke(context.Background(), tt.tool, tt.args)
			if err != nil {
				t.Fatalf("Invoke(%s) unexpected error: %v", tt.tool, err)
			}
			if result != tt.want {
				t.Errorf("Invoke(%s) = %v, want %q", tt.tool, result, tt.want)
			}
		})
	}
}

func TestSnippetTools_SaveGetSummarize(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	result, err := catalog.Invoke(ctx, SaveSnippetName, map[string]string{
		"snippetname": "notes",
		"snippet":     "First point. Second point. Third point.",
	})
	if err != nil {
		t.Fatalf("Invoke(save_snippet) unexpected error: %v", err)
	}
	if result != "Snippet 'notes' saved." {
		t.Errorf("Invoke(save_snippet) = %v", result)
	}

	result, err = catalog.Invoke(ctx, GetSnippetName, map[string]string{"snippetname": "notes"})
	if err != nil {
		t.Fatalf("Invoke(get_snippet) unexpected error: %v", err)
	}
	if result != "First point. Second point. Third point." {
		t.Errorf("Invoke(get_snippet) = %v", result)
	}

	result, err = catalog.Invoke(ctx, SummarizeSnippetName, map[string]string{"snippetname": "notes"})
	if err != nil {
		t.Fatalf("Invoke(summarize_snippet) unexpected error: %v", err)
	}
	summary, ok := result.(string)
	if !ok || !strings.HasPrefix(summary, "First point. Second point.") {
		t.Errorf("Invoke(summarize_snippet) = %v, want leading sentences", result)
	}
}

func TestGetSnippet_Miss(t *testing.T) {
	catalog := newTestCatalog(t)
	result, err := catalog.Invoke(context.Background(), GetSnippetName, map[string]string{"snippetname": "ghost"})
	if err != nil {
		t.Fatalf("Invoke(get_snippet) unexpected error: %v", err)
	}
	if result != "Snippet 'ghost' not found." {
		t.Errorf("Invoke(get_snippet) = %v, want not-found message", result)
	}
}

func TestSnippetTools_BackendFailure(t *testing.T) {
	svc := weather.NewService(&stubGeocoder{}, &stubFetcher{})
	catalog := NewCatalog(svc, &failingStore{err: errors.New("backend down")})

	_, err := catalog.Invoke(context.Background(), GetSnippetName, map[string]string{"snippetname": "x"})
	if err == nil {
		t.Error("Invoke(get_snippet) expected error on backend failure")
	}
	_, err = catalog.Invoke(context.Background(), SaveSnippetName, map[string]string{"snippetname": "x", "snippet": "y"})
	if err == nil {
		t.Error("Invoke(save_snippet) expected error on backend failure")
	}
}

func TestGetWeather_ErrorOutcome(t *testing.T) {
	catalog := newTestCatalog(t)
	result, err := catalog.Invoke(context.Background(), GetWeatherName, map[string]string{"location": "nowhere"})
	if err != nil {
		t.Fatalf("Invoke(get_weather) unexpected error: %v", err)
	}
	outcome, ok := result.(models.WeatherOutcome)
	if !ok {
		t.Fatalf("Invoke(get_weather) = %T, want WeatherOutcome", result)
	}
	if outcome.Kind != models.OutcomeError {
		t.Errorf("outcome kind = %q, want error for unresolvable location", outcome.Kind)
	}
	if outcome.Error.Message != weather.MsgLocationNotFound {
		t.Errorf("outcome message = %q, want %q", outcome.Error.Message, weather.MsgLocationNotFound)
	}
}

func TestGetWeatherWidget(t *testing.T) {
	catalog := newTestCatalog(t)
	result, err := catalog.Invoke(context.Background(), GetWeatherWidgetName, nil)
	if err != nil {
		t.Fatalf("Invoke(get_weather_widget) unexpected error: %v", err)
	}
	markup, ok := result.(string)
	if !ok {
		t.Fatalf("Invoke(get_weather_widget) = %T, want string", result)
	}
	if !strings.Contains(markup, "weather-widget") {
		t.Errorf("widget markup missing root class: %q", markup)
	}
}

func TestInvoke_UnknownTool(t *testing.T) {
	catalog := newTestCatalog(t)
	if _, err := catalog.Invoke(context.Background(), "nonexistent", nil); err == nil {
		t.Error("Invoke() expected error for unknown tool")
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() expected panic on duplicate name")
		}
	}()
	r := NewRegistry()
	r.Register(Definition{Name: "dup"}, helloHandler)
	r.Register(Definition{Name: "dup"}, helloHandler)
}
