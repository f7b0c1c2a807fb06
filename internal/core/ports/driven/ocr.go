package driven

import "context"

// OCRService transcribes text from an image using a vision-capable model.
//
// The image payload is always PNG-encoded; adapters are responsible for
// any transport encoding (base64 data URLs etc). The instruction text is
// language specific and comes from the prompt registry.
type OCRService interface {
	// ExtractText transcribes the PNG image. The returned text is
	// trimmed of surrounding whitespace.
	ExtractText(ctx context.Context, pngImage []byte, instruction string) (string, error)

	// ModelName returns the name of the vision model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
