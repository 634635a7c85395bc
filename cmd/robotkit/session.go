package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/robotkit/robotkit-sdk/application/template"
	"github.com/robotkit/robotkit-sdk/infrastructure/memhost"
	"github.com/robotkit/robotkit-sdk/infrastructure/parser"
	rklog "github.com/robotkit/robotkit-sdk/log"
	"github.com/robotkit/robotkit-sdk/robot"
)

const tracerName = "github.com/robotkit/robotkit-sdk/cmd/robotkit"

// session is one command run: a reference host seeded from the configured
// model and the app wrapping it.
type session struct {
	app      *robot.App
	host     *memhost.Host
	logger   *slog.Logger
	provider *sdktrace.TracerProvider
}

func openSession(ctx context.Context, cfg Config, stderr io.Writer) (*session, error) {
	level, err := rklog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := rklog.New(rklog.WithLevel(level), rklog.WithJSON(cfg.LogJSON), rklog.WithWriter(stderr))

	s := &session{logger: logger}
	opts := []memhost.Option{memhost.WithLogger(logger)}
	if cfg.Trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		s.provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		opts = append(opts, memhost.WithTracer(s.provider.Tracer(tracerName)))
	}

	if s.host, err = memhost.New(opts...); err != nil {
		return nil, err
	}
	if s.app, err = robot.New(s.host.App(), robot.WithCatalog(s.host.Catalog()), robot.WithLogger(logger)); err != nil {
		return nil, err
	}

	if cfg.Model != "" {
		data, err := os.ReadFile(cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("reading model: %w", err)
		}
		vars := make(map[string]any, len(cfg.Vars))
		for k, v := range cfg.Vars {
			vars[k] = v
		}
		if data, err = template.NewGoTemplateEngine().Render(data, vars); err != nil {
			return nil, err
		}
		model, err := parser.NewYamlModelLoader().Load(data)
		if err != nil {
			return nil, err
		}
		if err := s.app.Apply(ctx, model); err != nil {
			return nil, fmt.Errorf("applying model: %w", err)
		}
	}
	return s, nil
}

func (s *session) Close(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	return s.provider.Shutdown(ctx)
}
