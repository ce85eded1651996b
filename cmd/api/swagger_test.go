package main

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/server"
	carouselhandler "portfolio-site/internal/features/carousel/handler"
	githubhandler "portfolio-site/internal/features/github/handler"
	profilehandler "portfolio-site/internal/features/profile/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routeParam = regexp.MustCompile(`:(\w+)`)

// mountedRoutes returns "METHOD path" for every API route, in OpenAPI path syntax.
func mountedRoutes(t *testing.T) map[string]bool {
	t.Helper()
	srv := server.New(&config.AppConfig{})
	srv.Mount(
		profilehandler.NewProfileHandler(nil),
		githubhandler.NewGitHubHandler(nil),
		carouselhandler.NewCarouselHandler(nil, nil),
	)

	routes := make(map[string]bool)
	for _, r := range srv.App.GetRoutes(true) {
		if r.Method == http.MethodHead || strings.HasPrefix(r.Path, "/swagger") {
			continue
		}
		path := r.Path
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		path = routeParam.ReplaceAllString(path, "{$1}")
		routes[r.Method+" "+path] = true
	}
	return routes
}

// documentedRoutes returns "METHOD path" for every operation in the served OpenAPI document.
func documentedRoutes(t *testing.T) map[string]bool {
	t.Helper()
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	routes := make(map[string]bool)
	for path, ops := range parsed.Paths {
		for method := range ops {
			routes[strings.ToUpper(method)+" "+path] = true
		}
	}
	return routes
}

func TestSwaggerDoc_MatchesRoutes(t *testing.T) {
	mounted := mountedRoutes(t)
	documented := documentedRoutes(t)
	require.NotEmpty(t, mounted)

	for route := range mounted {
		assert.True(t, documented[route], "route %s is not documented; run go generate ./cmd/api", route)
	}
	for route := range documented {
		assert.True(t, mounted[route], "documented route %s is not mounted", route)
	}
}
