// Package types defines the core types and interfaces used throughout classifiles.
// This includes the FileType produced by classification, the Entry records
// yielded by directory traversal, and the capability interfaces (FS,
// SignatureOracle, DeepInspector) that the classifier and codecs are built on.
package types
