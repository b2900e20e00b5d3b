package service

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/scribemd/scribemd-go/internal/gemini"
	"github.com/scribemd/scribemd-go/internal/prompt"
)

var ErrMessageRequired = errors.New("message is required")

// DigitizeService turns photographed handwritten notes into Markdown by
// submitting them to the vision model with a prompt template.
type DigitizeService struct {
	client *gemini.Client
}

// NewDigitizeService creates a new DigitizeService.
func NewDigitizeService(client *gemini.Client) *DigitizeService {
	return &DigitizeService{client: client}
}

// Digitize sends the image and the selected prompt template to the model as
// a single multi-part request and returns the Markdown transcription.
// Unknown prompt ids fall back to the faithful-transcription default.
func (s *DigitizeService) Digitize(ctx context.Context, image []byte, mimeType, promptID string) (string, error) {
	p := prompt.ByID(promptID)

	return s.client.GenerateContent(ctx,
		gemini.Part{Text: p.Text},
		gemini.Part{InlineData: &gemini.InlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	)
}

// Chat sends a plain text message to the model and returns its answer.
func (s *DigitizeService) Chat(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", ErrMessageRequired
	}
	return s.client.GenerateContent(ctx, gemini.Part{Text: message})
}
