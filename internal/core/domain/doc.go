// Package domain defines the core entities of the document QA pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawUpload: An uploaded file awaiting ingestion
//   - Chunk: A bounded text span, the unit of embedding and retrieval
//   - Index: The similarity-search structure for one document
//   - LanguageEntry: Prompt texts for one supported language
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
