// Package llm talks to generative text models and turns their untrusted output
// into validated JSON documents.
package llm

import "context"

// TextGenerator is a text-in, text-out model client. Output carries no
// structural guarantees.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
