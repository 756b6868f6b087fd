// ABOUTME: Directory-persisted vector index over recipe blocks
// ABOUTME: Builds once, then serves cosine-similarity top-k queries
package index

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/dapoerjuna/juna/internal/embedding"
)

// CorpusItem is one block to index, with its loves count carried as
// metadata for re-ranking.
type CorpusItem struct {
	Block string
	Loves int
}

// Entry is a persisted index entry: the block text, its loves metadata,
// and its embedding vector.
type Entry struct {
	Block  string    `json:"block"`
	Loves  int       `json:"loves"`
	Vector []float64 `json:"vector"`
}

// Result is one query hit.
type Result struct {
	Block string  `json:"block"`
	Loves int     `json:"loves"`
	Score float64 `json:"score"`
}

// Index answers similarity queries over an embedded recipe corpus.
type Index struct {
	dir      string
	embedder embedding.Embedder
	entries  []Entry
}

// Build opens the index at dir. When the directory already exists and is
// non-empty the persisted entries are loaded; otherwise every corpus item
// is embedded and persisted. The first-time build is the expensive path
// and runs once per deployment.
//
// The embedder is always prepared on the corpus first, so corpus-fitted
// backends produce query vectors in the same space as the stored ones.
func Build(dir string, emb embedding.Embedder, corpus []CorpusItem) (*Index, error) {
	texts := make([]string, len(corpus))
	for i, item := range corpus {
		texts[i] = item.Block
	}
	if err := emb.Prepare(texts); err != nil {
		return nil, fmt.Errorf("preparing embedder: %w", err)
	}

	idx := &Index{dir: dir, embedder: emb}

	persisted, err := hasPersistedEntries(dir)
	if err != nil {
		return nil, err
	}
	if persisted {
		if err := idx.load(); err != nil {
			return nil, fmt.Errorf("loading persisted index: %w", err)
		}
		return idx, nil
	}

	if err := idx.build(corpus); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}
	return idx, nil
}

// hasPersistedEntries reports whether dir exists and is non-empty. That
// is the sole signal to skip rebuilding.
func hasPersistedEntries(dir string) (bool, error) {
	names, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading index directory: %w", err)
	}
	return len(names) > 0, nil
}

// build embeds every corpus item and persists one JSON file per entry.
// File names are zero-padded so a lexical directory listing restores
// insertion order.
func (idx *Index) build(corpus []CorpusItem) error {
	if err := os.MkdirAll(idx.dir, 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	idx.entries = make([]Entry, 0, len(corpus))
	for i, item := range corpus {
		vec, err := idx.embedder.Embed(item.Block)
		if err != nil {
			return fmt.Errorf("embedding block %d: %w", i, err)
		}

		entry := Entry{Block: item.Block, Loves: item.Loves, Vector: vec}
		if err := idx.persistEntry(i, entry); err != nil {
			return err
		}
		idx.entries = append(idx.entries, entry)
	}
	return nil
}

func (idx *Index) persistEntry(i int, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling entry %d: %w", i, err)
	}
	path := filepath.Join(idx.dir, fmt.Sprintf("entry-%06d.json", i))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing entry %d: %w", i, err)
	}
	return nil
}

// load reads all persisted entries back in insertion order.
func (idx *Index) load() error {
	names, err := os.ReadDir(idx.dir)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		if name.IsDir() || filepath.Ext(name.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(idx.dir, name.Name()))
	}
	sort.Strings(paths)

	idx.entries = make([]Entry, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		idx.entries = append(idx.entries, entry)
	}
	return nil
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Dir returns the persist directory.
func (idx *Index) Dir() string {
	return idx.dir
}

// Search returns up to k results ranked by cosine similarity descending.
// Ties keep insertion order. An empty result means no relevant context,
// not an error.
func (idx *Index) Search(text string, k int) ([]Result, error) {
	if k <= 0 || len(idx.entries) == 0 {
		return nil, nil
	}

	queryVec, err := idx.embedder.Embed(text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results := make([]Result, len(idx.entries))
	for i, entry := range idx.entries {
		results[i] = Result{
			Block: entry.Block,
			Loves: entry.Loves,
			Score: cosineSimilarity(queryVec, entry.Vector),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// Query returns the blocks of the top-k results.
func (idx *Index) Query(text string, k int) ([]string, error) {
	results, err := idx.Search(text, k)
	if err != nil {
		return nil, err
	}
	blocks := make([]string, len(results))
	for i, res := range results {
		blocks[i] = res.Block
	}
	return blocks, nil
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
