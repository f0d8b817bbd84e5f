// Package gemini counts corpus tokens with the Gemini local tokenizer, so
// extracted months can be sized against a model's context window.
package gemini

import (
	"context"
	"strings"

	"github.com/Quintaneishon/archtext"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultModel is the tokenizer model used when none is given.
const DefaultModel = "gemini-2.5-flash"

var _ archtext.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens offline with the tokenizer of one Gemini
// model. It never calls the API.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
// An empty model uses DefaultModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, archtext.Errorf(archtext.EINVALID, "tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the model whose tokenizer is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens returns the number of tokens text takes as a user turn.
// Tokenizing a month of articles takes a while, so a canceled context is
// checked first.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, archtext.Errorf(archtext.EINTERNAL, "count %s tokens: %v", tc.model, err)
	}

	return int(result.TotalTokens), nil
}
