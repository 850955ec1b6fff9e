// Command webscout runs a web search from the command line: it queries the
// configured backend, fetches each hit, and prints the normalized results.
//
// Usage:
//
//	webscout [-config path] [-backend google|metaphor] [-n count] query...
//
// Backend credentials come from the environment: GOOGLE_API_KEY and
// GOOGLE_CSE_ID for google, METAPHOR_API_KEY for metaphor.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"webscout/internal/adapter/search"
	"webscout/internal/adapter/tool"
	"webscout/internal/infra/config"
	"webscout/internal/infra/logger"
	"webscout/internal/infra/tracer"
	"webscout/internal/security"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "webscout:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (YAML)")
	backendFlag := flag.String("backend", "", "search backend override (google, metaphor)")
	numResults := flag.Int("n", 0, "number of results override")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("usage: webscout [flags] query...")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *backendFlag != "" {
		cfg.Search.Backend = *backendFlag
	}
	if *numResults > 0 {
		cfg.Search.NumResults = *numResults
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	ctx := context.Background()
	shutdownTracer, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer shutdownTracer(ctx)

	kind, err := search.ParseKind(cfg.Search.Backend)
	if err != nil {
		return err
	}

	apiClient := &http.Client{Timeout: cfg.Search.FetchTimeout}
	backend, err := search.New(kind, apiClient, log)
	if err != nil {
		return err
	}

	fetchClient := &http.Client{Timeout: cfg.Search.FetchTimeout}
	if cfg.Search.SSRFProtection {
		fetchClient.Transport = security.NewSafeTransport()
	}
	normalizer := search.NewNormalizer(fetchClient,
		cfg.Search.MaxContentLength, cfg.Search.MaxSummaryLength, log)
	normalizer.SetUserAgent(cfg.Search.UserAgent)

	registry := tool.NewRegistry(log)
	searchTool := tool.NewWebSearchTool(backend, normalizer, log)
	if err := registry.Register(searchTool); err != nil {
		return err
	}

	t, err := registry.Get(searchTool.Name())
	if err != nil {
		return err
	}

	params, err := json.Marshal(map[string]any{
		"query":       query,
		"num_results": cfg.Search.NumResults,
	})
	if err != nil {
		return err
	}

	result, err := t.Execute(ctx, params)
	if err != nil {
		return err
	}
	if result.IsError {
		return fmt.Errorf("%s", result.Content)
	}

	fmt.Println(result.Content)
	return nil
}
