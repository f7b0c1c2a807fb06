package image

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// fakeOCR records calls and returns a canned transcription.
type fakeOCR struct {
	instruction string
	png         []byte
	text        string
	err         error
}

func (f *fakeOCR) ExtractText(_ context.Context, pngImage []byte, instruction string) (string, error) {
	f.png = pngImage
	f.instruction = instruction
	return f.text, f.err
}

func (f *fakeOCR) ModelName() string { return "fake-vision" }
func (f *fakeOCR) Close() error      { return nil }

func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	ocr := &fakeOCR{text: "Ocean is vast."}
	extractor := New(ocr)

	text, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:     testJPEG(t),
		ContentType: "image/jpeg",
		Filename:    "photo.jpg",
		Language:    "English",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ocean is vast.", text)

	// The payload handed to OCR is always PNG regardless of the
	// uploaded format.
	decoded, err := png.Decode(bytes.NewReader(ocr.png))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), decoded.Bounds())

	entry, err := domain.LookupLanguage("English")
	require.NoError(t, err)
	assert.Equal(t, entry.OCRInstruction, ocr.instruction)
}

// TestExtract_OCRFailurePropagates verifies a failure on a standalone
// image is not swallowed: the image is the sole content.
func TestExtract_OCRFailurePropagates(t *testing.T) {
	ocr := &fakeOCR{err: errors.New("vision model unavailable")}
	extractor := New(ocr)

	_, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:     testJPEG(t),
		ContentType: "image/jpeg",
		Filename:    "photo.jpg",
		Language:    "English",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vision model unavailable")
}

func TestExtract_UndecodableImage(t *testing.T) {
	extractor := New(&fakeOCR{})

	_, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:     []byte("not an image"),
		ContentType: "image/png",
		Filename:    "broken.png",
		Language:    "English",
	})
	assert.Error(t, err)
}

func TestExtract_UnknownLanguage(t *testing.T) {
	extractor := New(&fakeOCR{})

	_, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:     testJPEG(t),
		ContentType: "image/jpeg",
		Filename:    "photo.jpg",
		Language:    "Latin",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}
