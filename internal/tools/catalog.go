package tools

import (
	"context"
	"fmt"

	"github.com/avelinak/tool-endpoint-service/internal/observability"
	"github.com/avelinak/tool-endpoint-service/internal/snippets"
	"github.com/avelinak/tool-endpoint-service/internal/weather"
)

// Canonical tool names.
const (
	HelloName            = "hello"
	GetSnippetName       = "get_snippet"
	SaveSnippetName      = "save_snippet"
	SummarizeSnippetName = "summarize_snippet"
	GetWeatherName       = "get_weather"
	GetWeatherWidgetName = "get_weather_widget"
)

// Fixed messages for absent required arguments. Returned as the tool result,
// never as a transport-level fault.
const (
	MsgNoSnippetName    = "No snippet name provided. Pass a 'snippetname' argument."
	MsgNoSnippetContent = "No snippet content provided. Pass a 'snippet' argument."
)

// summarySentences bounds snippet summaries to their leading sentences.
const summarySentences = 2

// NewCatalog builds the registry holding every tool this service exposes.
func NewCatalog(weatherSvc *weather.Service, store snippets.Store) *Registry {
	r := NewRegistry()

	r.Register(Definition{
		Name:        HelloName,
		Description: "Returns a greeting from the tool endpoint service.",
	}, helloHandler)

	r.Register(Definition{
		Name:        GetSnippetName,
		Description: "Retrieves a saved snippet by name.",
		Parameters: map[string]string{
			"snippetname": "Name of the snippet to retrieve.",
		},
	}, getSnippetHandler(store))

	r.Register(Definition{
		Name:        SaveSnippetName,
		Description: "Saves a snippet under a name, replacing any existing content.",
		Parameters: map[string]string{
			"snippetname": "Name to store the snippet under.",
			"snippet":     "Snippet content to store.",
		},
	}, saveSnippetHandler(store))

	r.Register(Definition{
		Name:        SummarizeSnippetName,
		Description: "Returns a short extract of a saved snippet.",
		Parameters: map[string]string{
			"snippetname": "Name of the snippet to summarize.",
		},
	}, summarizeSnippetHandler(store))

	r.Register(Definition{
		Name:        GetWeatherName,
		Description: "Looks up current weather for a location. Defaults to Seattle, WA when omitted.",
		Parameters: map[string]string{
			"location": "City, address, or zip code.",
		},
	}, getWeatherHandler(weatherSvc))

	r.Register(Definition{
		Name:        GetWeatherWidgetName,
		Description: "Returns embeddable markup for the weather widget.",
	}, weatherWidgetHandler)

	return r
}

func helloHandler(ctx context.Context, args map[string]string) (any, error) {
	return "Hello from the tool endpoint service!", nil
}

func getSnippetHandler(store snippets.Store) Handler {
	return func(ctx context.Context, args map[string]string) (any, error) {
		name := args["snippetname"]
		if name == "" {
			return MsgNoSnippetName, nil
		}
		content, ok, err := store.Get(ctx, name)
		if err != nil {
			observability.SnippetStoreOpsTotal.WithLabelValues("get", "error").Inc()
			return nil, fmt.Errorf("get snippet %q: %w", name, err)
		}
		if !ok {
			observability.SnippetStoreOpsTotal.WithLabelValues("get", "miss").Inc()
			return fmt.Sprintf("Snippet '%s' not found.", name), nil
		}
		observability.SnippetStoreOpsTotal.WithLabelValues("get", "hit").Inc()
		return content, nil
	}
}

func saveSnippetHandler(store snippets.Store) Handler {
	return func(ctx context.Context, args map[string]string) (any, error) {
		name := args["snippetname"]
		if name == "" {
			return MsgNoSnippetName, nil
		}
		content := args["snippet"]
		if content == "" {
			return MsgNoSnippetContent, nil
		}
		if err := store.Save(ctx, name, content); err != nil {
			observability.SnippetStoreOpsTotal.WithLabelValues("save", "error").Inc()
			return nil, fmt.Errorf("save snippet %q: %w", name, err)
		}
		observability.SnippetStoreOpsTotal.WithLabelValues("save", "ok").Inc()
		return fmt.Sprintf("Snippet '%s' saved.", name), nil
	}
}

func summarizeSnippetHandler(store snippets.Store) Handler {
	return func(ctx context.Context, args map[string]string) (any, error) {
		name := args["snippetname"]
		if name == "" {
			return MsgNoSnippetName, nil
		}
		content, ok, err := store.Get(ctx, name)
		if err != nil {
			observability.SnippetStoreOpsTotal.WithLabelValues("get", "error").Inc()
			return nil, fmt.Errorf("get snippet %q: %w", name, err)
		}
		if !ok {
			observability.SnippetStoreOpsTotal.WithLabelValues("get", "miss").Inc()
			return fmt.Sprintf("Snippet '%s' not found.", name), nil
		}
		observability.SnippetStoreOpsTotal.WithLabelValues("get", "hit").Inc()
		return snippets.Summarize(content, summarySentences), nil
	}
}

func getWeatherHandler(svc *weather.Service) Handler {
	return func(ctx context.Context, args map[string]string) (any, error) {
		// An absent location is not an error; the pipeline falls back to
		// the default location.
		return svc.Lookup(ctx, args["location"]), nil
	}
}
