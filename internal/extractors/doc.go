// Package extractors turns raw upload bytes into plain text.
//
// Each media kind has its own extractor package (pdf, image, docx); the
// registry in this package dispatches on the declared content type with
// a filename-extension fallback for formats that are not reliably typed
// (word-processor documents arrive with inconsistent MIME types).
package extractors
