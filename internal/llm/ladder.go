package llm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonathan/profession-catalog/internal/config"
)

// backoffCeiling caps the linear retry delay within one layer.
const backoffCeiling = 3 * time.Second

// debugTruncateLen limits how much response text debug mode prints.
const debugTruncateLen = 800

// Ladder runs the degrading call sequence against the generative endpoint:
// structured call with web search, structured call without tools, then a
// chat-mode call with the schema embedded in the prompt. Each layer retries
// with a linear capped backoff. Transport and parse failures never escape;
// exhaustion yields an empty map.
type Ladder struct {
	client  Client
	retries int
	timeout time.Duration
	debug   bool
	logw    io.Writer
	sleep   func(time.Duration)
}

// NewLadder creates a Ladder from the process configuration.
func NewLadder(client Client, cfg *config.Config) *Ladder {
	return &Ladder{
		client:  client,
		retries: cfg.LayerRetries,
		timeout: cfg.Timeout,
		debug:   cfg.Debug,
		logw:    os.Stderr,
		sleep:   time.Sleep,
	}
}

// layer is one rung of the ladder: a name for debug output and the call it
// performs.
type layer struct {
	name string
	call func(ctx context.Context) (string, error)
}

// Fetch walks the layers in order and returns the first non-empty parsed
// mapping. Callers must treat an empty map as "no data obtained".
func (l *Ladder) Fetch(ctx context.Context, req Request) map[string]any {
	layers := []layer{
		{"structured+web", func(ctx context.Context) (string, error) {
			return l.client.StructuredCompletion(ctx, req, true)
		}},
		{"structured", func(ctx context.Context) (string, error) {
			return l.client.StructuredCompletion(ctx, req, false)
		}},
		{"chat", func(ctx context.Context) (string, error) {
			return l.client.ChatCompletion(ctx, req)
		}},
	}

	for _, ly := range layers {
		if out := l.tryLayer(ctx, ly); len(out) > 0 {
			return out
		}
	}
	return map[string]any{}
}

// tryLayer retries one layer with linear capped backoff. A non-empty parsed
// mapping short-circuits; any failure counts as an empty attempt.
func (l *Ladder) tryLayer(ctx context.Context, ly layer) map[string]any {
	for attempt := 0; attempt < l.retries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, l.timeout)
		text, err := ly.call(callCtx)
		cancel()

		if err != nil {
			l.debugf("[WARN] %s call failed: %v\n", ly.name, err)
		} else {
			l.debugf("--- %s ---\n%s\n---\n", ly.name, truncate(text, debugTruncateLen))
			if out := SalvageJSON(CleanJSONBlock(text)); len(out) > 0 {
				return out
			}
		}

		if attempt < l.retries-1 {
			l.sleep(backoff(attempt))
		}
	}
	return nil
}

// backoff returns the delay after the given zero-based attempt: 1s, 2s, 3s, 3s...
func backoff(attempt int) time.Duration {
	d := time.Duration(attempt+1) * time.Second
	if d > backoffCeiling {
		d = backoffCeiling
	}
	return d
}

func (l *Ladder) debugf(format string, args ...any) {
	if l.debug {
		_, _ = fmt.Fprintf(l.logw, format, args...)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
