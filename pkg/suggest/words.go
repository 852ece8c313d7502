package suggest

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordInfo is an indexed word and the number of distinct phrases containing it.
type WordInfo struct {
	Word    string
	Phrases int
}

// indexWords adds phrase id to the set of every whitespace token of lower.
// Sets are roaring bitmaps keyed by word in a patricia trie; re-adding an id is a no-op.
func (idx *PhraseIndex) indexWords(lower string, id uint32) {
	for _, word := range strings.Fields(lower) {
		key := patricia.Prefix(word)
		if item := idx.words.Get(key); item != nil {
			item.(*roaring.Bitmap).Add(id)
			continue
		}
		set := roaring.New()
		set.Add(id)
		idx.words.Insert(key, set)
		idx.wordCount++
	}
}

// SearchWord returns the phrases containing word as a whole token, case-insensitively.
// Results follow first-insertion order; unknown words give an empty slice.
func (idx *PhraseIndex) SearchWord(word string) []string {
	lower := strings.ToLower(word)
	if lower == "" {
		return []string{}
	}

	item := idx.words.Get(patricia.Prefix(lower))
	if item == nil {
		return []string{}
	}

	ids := item.(*roaring.Bitmap).ToArray()
	phrases := make([]string, len(ids))
	for i, id := range ids {
		phrases[i] = idx.phrases[id]
	}
	return phrases
}

// Words lists indexed words starting with prefix, the most widely used first.
// A limit of 0 returns every match.
func (idx *PhraseIndex) Words(prefix string, limit int) []WordInfo {
	var words []WordInfo

	err := idx.words.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, WordInfo{
			Word:    string(p),
			Phrases: int(item.(*roaring.Bitmap).GetCardinality()),
		})
		return nil
	})
	if err != nil || len(words) == 0 {
		return []WordInfo{}
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Phrases != words[j].Phrases {
			return words[i].Phrases > words[j].Phrases
		}
		return words[i].Word < words[j].Word
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
