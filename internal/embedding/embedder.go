// ABOUTME: Embedder abstraction over text-to-vector backends
// ABOUTME: Implementations may require a preparation phase over the corpus
package embedding

// Embedder converts free text into a numeric vector representation.
type Embedder interface {
	// Name identifies the backend implementation.
	Name() string
	// Prepare gives the embedder a chance to fit itself to the corpus.
	// Backends with a fixed model treat this as a no-op.
	Prepare(corpus []string) error
	// Dimension returns the dimensionality of produced vectors. Only
	// meaningful after Prepare for corpus-fitted backends.
	Dimension() int
	// Embed computes the vector for the given text.
	Embed(text string) ([]float64, error)
}
