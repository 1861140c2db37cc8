// Package testutil provides utilities for testing classifiles components.
//
// Key components:
//   - TestEnvironment: temporary input/output roots on the real filesystem,
//     with builders for files, directories and symlinks
//   - MockOracle / MockInspector: testify mocks for the detection capabilities
//   - SequenceRand: deterministic randomness for name generation
//
// Symlinks are central to every run, so environments use the OS
// filesystem inside t.TempDir() rather than an in-memory one.
package testutil
