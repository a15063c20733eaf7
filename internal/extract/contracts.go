package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: document -> text, pages concatenated in order.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextResult, error)
}

type TextResult struct {
	Text     string
	Pages    int
	Duration time.Duration
}
