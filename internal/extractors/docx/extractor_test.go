package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

// buildDOCX assembles a minimal DOCX archive around the given
// document.xml body.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	entry, err := writer.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return buf.Bytes()
}

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t></w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph.</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:t>Third paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract(t *testing.T) {
	extractor := New()

	text, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:     buildDOCX(t, sampleDocument),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Filename:    "report.docx",
		Language:    "English",
	})
	require.NoError(t, err)

	// Non-empty paragraphs only, joined by newlines, in order.
	assert.Equal(t, "First paragraph.\nSecond paragraph.\nThird paragraph.", text)
}

func TestExtract_InvalidArchive(t *testing.T) {
	extractor := New()

	_, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:  []byte("not a zip archive"),
		Filename: "broken.docx",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	entry, err := writer.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	extractor := New()
	_, err = extractor.Extract(context.Background(), &domain.RawUpload{
		Content:  buf.Bytes(),
		Filename: "odd.docx",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestExtract_TempFileCleanup verifies the staged copy is removed on
// both the success and the failure path.
func TestExtract_TempFileCleanup(t *testing.T) {
	staged := func() int {
		matches, err := filepath.Glob(filepath.Join(os.TempDir(), "upload-*.docx"))
		require.NoError(t, err)
		return len(matches)
	}

	before := staged()
	extractor := New()

	_, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:  buildDOCX(t, sampleDocument),
		Filename: "ok.docx",
	})
	require.NoError(t, err)

	_, err = extractor.Extract(context.Background(), &domain.RawUpload{
		Content:  []byte("garbage"),
		Filename: "bad.docx",
	})
	require.Error(t, err)

	assert.Equal(t, before, staged())
}

func TestExtract_TabsAndBreaks(t *testing.T) {
	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>left</w:t><w:tab/><w:t>right</w:t></w:r></w:p>
  </w:body>
</w:document>`

	extractor := New()
	text, err := extractor.Extract(context.Background(), &domain.RawUpload{
		Content:  buildDOCX(t, documentXML),
		Filename: "tabs.docx",
	})
	require.NoError(t, err)
	assert.Equal(t, "left\tright", text)
}
