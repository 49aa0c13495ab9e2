// Package tokens counts model tokens with a tiktoken encoding.
package tokens

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// DefaultModel is used when no model is given or the requested one is unknown.
const DefaultModel = "gpt-4o"

// Encoder is the part of a tiktoken encoding the counter needs.
type Encoder interface {
	EncodeOrdinary(text string) []int
}

// Counter counts tokens for a single model.
type Counter struct {
	model string
	enc   Encoder
}

// New loads the encoding for model, falling back to DefaultModel.
// The encoding tables may be fetched and cached on first use.
func New(model string, logger *zap.Logger) (*Counter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = DefaultModel
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil && model != DefaultModel {
		logger.Warn("Unknown tokenizer model, falling back to default",
			zap.String("model", model),
			zap.String("default", DefaultModel),
			zap.Error(err))
		model = DefaultModel
		enc, err = tiktoken.EncodingForModel(model)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tiktoken encoding for model '%s': %w", model, err)
	}
	return &Counter{model: model, enc: enc}, nil
}

// NewWithEncoder wraps an already loaded encoder.
func NewWithEncoder(model string, enc Encoder) *Counter {
	return &Counter{model: model, enc: enc}
}

// Model returns the model whose encoding is in use.
func (c *Counter) Model() string {
	return c.model
}

// Count returns the number of tokens in text. Special-token markers are
// treated as ordinary text.
func (c *Counter) Count(text string) int {
	if c == nil || c.enc == nil || text == "" {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}
