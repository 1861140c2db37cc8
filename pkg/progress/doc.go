// Package progress reports how far a run has got and renders its final
// summary. The bar is drawn on a terminal only; when the output is piped
// reporting degrades to nothing.
package progress
