// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Extractor: Turns raw upload bytes into plain text
//   - ExtractorRegistry: Selects the extractor for a media kind
//   - EmbeddingService: Generates vector embeddings
//   - GenerationService: Produces the final answer text
//   - OCRService: Transcribes an image into text
//   - IndexRepository: Per-document vector index persistence
//
// All capabilities are blocking I/O against external model providers.
// The core adds no timeout or retry policy of its own; retry and
// backoff are deployment concerns layered outside these ports.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
