package cache

import (
	"context"
	"strings"

	"github.com/getsentry/sentry-go"
)

// startSpan opens a span for one cache call on the request's hub. It returns nil
// outside a traced request, and the other helpers accept that nil.
func startSpan(ctx context.Context, operation, key string) *sentry.Span {
	if sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	span := sentry.StartSpan(ctx, "cache."+operation)
	if span == nil {
		return nil
	}
	span.Description = "cache." + operation + " " + keyKind(key)
	span.SetData("cache.key", key)
	span.SetData("cache.kind", keyKind(key))
	return span
}

// keyKind is the key's prefix, e.g. "product" for product:v1::p1
func keyKind(key string) string {
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

func finishSpan(span *sentry.Span, hit *bool) {
	if span == nil {
		return
	}
	if hit != nil {
		span.SetData("cache.hit", *hit)
	}
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
