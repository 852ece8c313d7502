package suggest

import (
	"sort"
	"strings"
)

// Suggestion is a ranked phrase with its insertion count.
type Suggestion struct {
	Phrase    string
	Frequency int
}

type candidate struct {
	id   uint32
	freq int
}

// Autocomplete returns up to limit phrases whose lower-cased form starts with the
// lower-cased prefix, most frequent first. Equal frequencies keep first-insertion order.
//
// An unknown prefix yields an empty slice. The empty prefix ranks every phrase by its
// total count.
func (idx *PhraseIndex) Autocomplete(prefix string, limit int) ([]string, error) {
	suggestions, err := idx.Complete(prefix, limit)
	if err != nil {
		return nil, err
	}
	phrases := make([]string, len(suggestions))
	for i, s := range suggestions {
		phrases[i] = s.Phrase
	}
	return phrases, nil
}

// Complete ranks like Autocomplete and keeps the frequencies.
func (idx *PhraseIndex) Complete(prefix string, limit int) ([]Suggestion, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if limit == 0 {
		return []Suggestion{}, nil
	}

	var candidates []candidate
	if prefix == "" {
		candidates = make([]candidate, len(idx.counts))
		for id, freq := range idx.counts {
			candidates[id] = candidate{id: uint32(id), freq: freq}
		}
	} else {
		n, ok := idx.walk(strings.ToLower(prefix))
		if !ok {
			return []Suggestion{}, nil
		}
		freqs := idx.nodes[n].freqs
		candidates = make([]candidate, 0, len(freqs))
		for id, freq := range freqs {
			candidates = append(candidates, candidate{id: id, freq: freq})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].freq != candidates[j].freq {
			return candidates[i].freq > candidates[j].freq
		}
		return candidates[i].id < candidates[j].id
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion{
			Phrase:    idx.phrases[c.id],
			Frequency: c.freq,
		}
	}
	return suggestions, nil
}
