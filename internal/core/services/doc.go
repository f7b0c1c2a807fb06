// Package services implements the driving port interfaces.
// Services contain the pipeline logic and orchestrate calls to driven
// ports (extractors, capabilities, the index repository).
//
// Services are pure Go with no external dependencies beyond the ports.
package services
