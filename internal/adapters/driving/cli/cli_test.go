package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainisachin393/Multilingual-Rag-Chatbot/internal/core/domain"
)

type fakeIngestService struct {
	upload  *domain.RawUpload
	uploads []*domain.RawUpload
	docID   string
	err     error
}

func (f *fakeIngestService) Ingest(_ context.Context, upload *domain.RawUpload) (string, error) {
	f.upload = upload
	f.uploads = append(f.uploads, upload)
	return f.docID, f.err
}

type fakeQueryService struct {
	docID    string
	question string
	language string
	answer   string
	err      error
}

func (f *fakeQueryService) Query(_ context.Context, docID, question, language string) (string, error) {
	f.docID = docID
	f.question = question
	f.language = language
	return f.answer, f.err
}

// withFakeServices injects fakes and restores package state afterwards.
func withFakeServices(t *testing.T, ingest *fakeIngestService, query *fakeQueryService) {
	t.Helper()
	ingestService = ingest
	queryService = query
	t.Cleanup(func() {
		ingestService = nil
		queryService = nil
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestIngestCmd(t *testing.T) {
	ingest := &fakeIngestService{docID: "doc_abc"}
	withFakeServices(t, ingest, &fakeQueryService{})

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))

	out, err := execute(t, "ingest", path, "--language", "Japanese")
	require.NoError(t, err)
	assert.Contains(t, out, "Document ID: doc_abc")

	require.NotNil(t, ingest.upload)
	assert.Equal(t, "report.pdf", ingest.upload.Filename)
	assert.Equal(t, "Japanese", ingest.upload.Language)
	assert.Equal(t, "application/pdf", ingest.upload.ContentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), ingest.upload.Content)
}

func TestIngestCmdDefaultsToEnglish(t *testing.T) {
	ingest := &fakeIngestService{docID: "doc_abc"}
	withFakeServices(t, ingest, &fakeQueryService{})

	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644))

	_, err := execute(t, "ingest", path, "--language", "English")
	require.NoError(t, err)
	assert.Equal(t, "English", ingest.upload.Language)
	assert.Equal(t, "image/png", ingest.upload.ContentType)
}

func TestIngestCmdDirectory(t *testing.T) {
	ingest := &fakeIngestService{docID: "doc_abc"}
	withFakeServices(t, ingest, &fakeQueryService{})

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-1.4"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.docx"), []byte("PK"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))

	out, err := execute(t, "ingest", dir, "--language", "English")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingested 3 documents (0 failed).")

	var names []string
	for _, upload := range ingest.uploads {
		names = append(names, upload.Filename)
	}
	assert.ElementsMatch(t, []string{"a.pdf", "b.docx", "c.png"}, names)
}

func TestIngestCmdMissingFile(t *testing.T) {
	withFakeServices(t, &fakeIngestService{}, &fakeQueryService{})

	_, err := execute(t, "ingest", filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
}

func TestQueryCmd(t *testing.T) {
	query := &fakeQueryService{answer: "The sky is blue."}
	withFakeServices(t, &fakeIngestService{}, query)

	out, err := execute(t, "query", "doc_123", "What color is the sky?", "--language", "Chinese")
	require.NoError(t, err)
	assert.Contains(t, out, "The sky is blue.")
	assert.Equal(t, "doc_123", query.docID)
	assert.Equal(t, "What color is the sky?", query.question)
	assert.Equal(t, "Chinese", query.language)
}

func TestQueryCmdPropagatesError(t *testing.T) {
	query := &fakeQueryService{err: domain.ErrDocumentNotFound}
	withFakeServices(t, &fakeIngestService{}, query)

	_, err := execute(t, "query", "doc_missing", "anything", "--language", "English")
	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestLanguagesCmd(t *testing.T) {
	withFakeServices(t, &fakeIngestService{}, &fakeQueryService{})

	out, err := execute(t, "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "Japanese")
	assert.Contains(t, out, "Chinese")
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ragchat version test-1.0.0")
}
