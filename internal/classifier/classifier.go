// Package classifier sends (prompt, image) pairs to a vision-language model and extracts the text answer.
package classifier

import (
	"context"
	"fmt"
	"strings"
)

// DefaultMaxTokens bounds the model's reply length.
const DefaultMaxTokens = 100

// Request is a single classification call.
type Request struct {
	Prompt      string
	ImageBase64 string // standard base64, no data-URL prefix
	MaxTokens   int
}

// Result is the textual answer. OK == false means the call failed or the
// payload could not be parsed; callers treat it as an absent answer.
type Result struct {
	Text string
	OK   bool
}

// Absent is the failed result.
var Absent = Result{}

// Classifier performs at most one remote attempt per call and never returns an error:
// failures are reported to the logger and surface as Absent.
type Classifier interface {
	Classify(ctx context.Context, req Request) Result
}

// TypePrompt asks which of the given type names the image shows.
func TypePrompt(names []string) string {
	return fmt.Sprintf(
		"Which of the following types of trash is shown in this image: %s? "+
			"Answer with the exact type name only.",
		strings.Join(names, ", "),
	)
}

// GuidancePrompt asks how to dispose of the detected type.
func GuidancePrompt(typeName string) string {
	return fmt.Sprintf(
		"The item in this image is %s. Which recycling bin should it go into and how should it be prepared? "+
			"Answer in at most two short sentences.",
		typeName,
	)
}
