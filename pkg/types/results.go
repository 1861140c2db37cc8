package types

import "sort"

// RunResult summarizes what a scan, backup or restore run did.
type RunResult struct {
	Verb       string
	InputPath  string
	OutputPath string

	// Total is the number of entries the counting traversal found.
	Total int

	// Counters by outcome
	Linked      int
	Directories int
	Symlinks    int
	Skipped     int

	// Created holds the paths written under the output root.
	Created []string

	// ByCategory counts scan placements per output directory.
	ByCategory map[string]int
}

// NewRunResult creates an empty result for the given verb.
func NewRunResult(verb, input, output string) *RunResult {
	return &RunResult{
		Verb:       verb,
		InputPath:  input,
		OutputPath: output,
		ByCategory: make(map[string]int),
	}
}

// Categories returns the scan categories in sorted order.
func (r *RunResult) Categories() []string {
	names := make([]string, 0, len(r.ByCategory))
	for name := range r.ByCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
