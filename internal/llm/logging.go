package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider writes one structured log record per Generate call.
// Prompts and replies are logged only at debug level since they embed the
// candidate's job posting.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, logger: logger.With("component", "llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		slog.String("purpose", PurposeFrom(ctx)),
		slog.String("model", l.inner.ModelID()),
		slog.Duration("latency", time.Since(start)),
	}
	if req.Schema != nil {
		attrs = append(attrs, slog.String("schema", req.Schema.Name))
	}
	if resp != nil {
		attrs = append(attrs,
			slog.String("served_by", resp.Model),
			slog.Int("input_tokens", resp.Usage.InputTokens),
			slog.Int("output_tokens", resp.Usage.OutputTokens),
			slog.String("stop", resp.StopReason),
		)
		if cost := LookupCost(resp.Model); cost != nil {
			attrs = append(attrs, slog.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		l.logger.WarnContext(ctx, "llm request failed", append(attrs, slog.Any("error", err))...)
		return resp, err
	}
	l.logger.InfoContext(ctx, "llm request", attrs...)
	if l.logger.Enabled(ctx, slog.LevelDebug) {
		l.logger.DebugContext(ctx, "llm exchange",
			slog.String("system", req.System),
			slog.Int("messages", len(req.Messages)),
			slog.String("reply", resp.Text()),
		)
	}
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
