package suggest

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func newIndex(t *testing.T, phrases ...string) *PhraseIndex {
	t.Helper()
	idx := NewPhraseIndex()
	for _, p := range phrases {
		if err := idx.Insert(p); err != nil {
			t.Fatalf("Insert(%q): %v", p, err)
		}
	}
	return idx
}

func TestAutocompleteRanksByFrequency(t *testing.T) {
	idx := newIndex(t,
		"Chuck Norris can divide by zero",
		"Chuck Norris can divide by zero",
		"Chuck Norris once kicked a horse",
	)

	got, err := idx.Autocomplete("Chuck", 2)
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	want := []string{"Chuck Norris can divide by zero", "Chuck Norris once kicked a horse"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Autocomplete(Chuck, 2) = %q, want %q", got, want)
	}

	if got := idx.SearchWord("divide"); !reflect.DeepEqual(got, []string{"Chuck Norris can divide by zero"}) {
		t.Errorf("SearchWord(divide) = %q", got)
	}
}

func TestRepeatedInsertCountsFrequency(t *testing.T) {
	idx := NewPhraseIndex()
	const n = 5
	for i := 0; i < n; i++ {
		if err := idx.Insert("Chuck Norris counted to infinity twice"); err != nil {
			t.Fatal(err)
		}
	}

	for _, prefix := range []string{"c", "chuck", "Chuck Norris counted", "chuck norris counted to infinity twice"} {
		got, err := idx.Complete(prefix, 10)
		if err != nil {
			t.Fatalf("Complete(%q): %v", prefix, err)
		}
		if len(got) != 1 || got[0].Frequency != n {
			t.Errorf("Complete(%q) = %+v, want one phrase with frequency %d", prefix, got, n)
		}
	}

	for _, word := range []string{"chuck", "counted", "twice"} {
		if got := idx.SearchWord(word); len(got) != 1 {
			t.Errorf("SearchWord(%q) returned %d phrases, want 1", word, len(got))
		}
	}
}

func TestAutocompleteCaseInsensitive(t *testing.T) {
	idx := newIndex(t, "Walk the dog", "walking on water", "Wall of text")

	upper, err := idx.Autocomplete("Wal", 10)
	if err != nil {
		t.Fatal(err)
	}
	lower, err := idx.Autocomplete("wal", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("Autocomplete(Wal) = %q, Autocomplete(wal) = %q", upper, lower)
	}
	if len(upper) != 3 || upper[0] != "Walk the dog" {
		t.Errorf("expected original casing and insertion order, got %q", upper)
	}
}

func TestAutocompleteEdgeCases(t *testing.T) {
	idx := newIndex(t,
		"Chuck Norris",
		"Chuck Norris",
		"Chuck Norris",
		"Chuck Norris once kicked a horse",
		"Bruce Lee",
		"Bruce Lee",
	)

	testCases := []struct {
		description string
		prefix      string
		limit       int
		expected    []string
	}{
		{"unknown prefix", "xyz", 10, []string{}},
		{"partially matching prefix", "chucky", 10, []string{}},
		{"zero limit", "chuck", 0, []string{}},
		{"limit smaller than matches", "chuck", 1, []string{"Chuck Norris"}},
		{"limit larger than matches", "b", 10, []string{"Bruce Lee"}},
		{"empty prefix ranks globally", "", 10, []string{"Chuck Norris", "Bruce Lee", "Chuck Norris once kicked a horse"}},
		{"empty prefix with limit", "", 2, []string{"Chuck Norris", "Bruce Lee"}},
		{"prefix spanning a space", "chuck norris ", 10, []string{"Chuck Norris once kicked a horse"}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := idx.Autocomplete(tc.prefix, tc.limit)
			if err != nil {
				t.Fatalf("Autocomplete(%q, %d): %v", tc.prefix, tc.limit, err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Autocomplete(%q, %d) = %q, want %q", tc.prefix, tc.limit, got, tc.expected)
			}
		})
	}
}

func TestAutocompleteTieBreakKeepsInsertionOrder(t *testing.T) {
	idx := newIndex(t, "apple pie", "apple tart", "apple crumble", "apple tart")

	got, err := idx.Autocomplete("apple", 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"apple tart", "apple pie", "apple crumble"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Autocomplete(apple) = %q, want %q", got, want)
	}
}

func TestAutocompleteNegativeLimit(t *testing.T) {
	idx := newIndex(t, "Chuck Norris")
	if _, err := idx.Autocomplete("c", -1); !errors.Is(err, ErrNegativeLimit) {
		t.Errorf("expected ErrNegativeLimit, got %v", err)
	}
}

func TestAutocompletePrefixMonotonic(t *testing.T) {
	idx := newIndex(t,
		"the quick brown fox",
		"the quiet night",
		"then and now",
		"there is no spoon",
		"the quick brown fox",
		"thermal paste",
	)

	prefixes := []string{"t", "th", "the", "the ", "the q", "the qui", "the quick"}
	for i := 1; i < len(prefixes); i++ {
		wider, err := idx.Autocomplete(prefixes[i-1], 100)
		if err != nil {
			t.Fatal(err)
		}
		narrower, err := idx.Autocomplete(prefixes[i], 100)
		if err != nil {
			t.Fatal(err)
		}
		set := make(map[string]bool, len(wider))
		for _, p := range wider {
			set[p] = true
		}
		for _, p := range narrower {
			if !set[p] {
				t.Errorf("%q matched %q but %q did not", prefixes[i], p, prefixes[i-1])
			}
		}
		if len(narrower) > len(wider) {
			t.Errorf("%q returned more phrases than %q", prefixes[i], prefixes[i-1])
		}
	}
}

func TestLimitBound(t *testing.T) {
	idx := newIndex(t, "a1", "a2", "a3", "a4", "a5", "a6")
	for limit := 0; limit < 10; limit++ {
		got, err := idx.Autocomplete("a", limit)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) > limit {
			t.Errorf("limit %d returned %d phrases", limit, len(got))
		}
	}
}

func TestInsertRejectsEmpty(t *testing.T) {
	idx := NewPhraseIndex()
	for _, phrase := range []string{"", " ", "\t\n"} {
		if err := idx.Insert(phrase); !errors.Is(err, ErrEmptyPhrase) {
			t.Errorf("Insert(%q) = %v, want ErrEmptyPhrase", phrase, err)
		}
	}

	stats := idx.Stats()
	if stats["phrases"] != 0 || stats["nodes"] != 0 || stats["words"] != 0 {
		t.Errorf("rejected inserts changed the index: %v", stats)
	}
	if len(idx.Dump().Children) != 0 {
		t.Error("rejected inserts created nodes")
	}
}

func TestSearchWordExactToken(t *testing.T) {
	idx := newIndex(t,
		"Chuck Norris counted to infinity twice",
		"Chuck Norris can count to zero",
		"When Chuck Norris does a pushup, he pushes the Earth down",
	)

	testCases := []struct {
		description string
		word        string
		expected    []string
	}{
		{"exact token", "counted", []string{"Chuck Norris counted to infinity twice"}},
		{"no partial match", "count", []string{"Chuck Norris can count to zero"}},
		{"no substring match", "coun", []string{}},
		{"case insensitive", "NORRIS", []string{
			"Chuck Norris counted to infinity twice",
			"Chuck Norris can count to zero",
			"When Chuck Norris does a pushup, he pushes the Earth down",
		}},
		{"punctuation stays in token", "pushup,", []string{"When Chuck Norris does a pushup, he pushes the Earth down"}},
		{"punctuation not stripped", "pushup", []string{}},
		{"unknown word", "roundhouse", []string{}},
		{"empty word", "", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := idx.SearchWord(tc.word)
			sort.Strings(got)
			want := append([]string(nil), tc.expected...)
			sort.Strings(want)
			if len(got) != len(want) || (len(want) > 0 && !reflect.DeepEqual(got, want)) {
				t.Errorf("SearchWord(%q) = %q, want %q", tc.word, got, want)
			}
		})
	}
}

func TestSearchWordKeepsFirstCasing(t *testing.T) {
	idx := newIndex(t, "Chuck Norris", "chuck norris")

	got := idx.SearchWord("chuck")
	want := []string{"Chuck Norris", "chuck norris"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchWord(chuck) = %q, want %q", got, want)
	}
}

func TestWords(t *testing.T) {
	idx := newIndex(t,
		"Chuck Norris can divide by zero",
		"Chuck Norris once kicked a horse",
		"Chuck can count",
	)

	got := idx.Words("c", 0)
	want := []WordInfo{
		{Word: "chuck", Phrases: 3},
		{Word: "can", Phrases: 2},
		{Word: "count", Phrases: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words(c) = %+v, want %+v", got, want)
	}

	if got := idx.Words("c", 1); len(got) != 1 || got[0].Word != "chuck" {
		t.Errorf("Words(c, 1) = %+v", got)
	}
	if got := idx.Words("q", 0); len(got) != 0 {
		t.Errorf("Words(q) = %+v, want none", got)
	}
}

func TestDumpShape(t *testing.T) {
	idx := newIndex(t, "ab")

	root := idx.Dump()
	if root.Terminal || root.TerminalCount != 0 || root.PhraseCount != 0 {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}

	a, ok := root.Children["a"]
	if !ok {
		t.Fatal("missing child 'a'")
	}
	if a.Terminal || a.TerminalCount != 0 || a.PhraseCount != 1 {
		t.Errorf("'a' = %+v", a)
	}

	b, ok := a.Children["b"]
	if !ok {
		t.Fatal("missing child 'b'")
	}
	if !b.Terminal || b.TerminalCount != 1 || b.PhraseCount != 1 {
		t.Errorf("'b' = %+v", b)
	}
	if b.Children == nil || len(b.Children) != 0 {
		t.Errorf("leaf children = %v, want empty map", b.Children)
	}
}

func TestDumpTracksDuplicatesAndCasing(t *testing.T) {
	idx := newIndex(t, "Ab", "ab", "ab", "abc")

	a := idx.Dump().Children["a"]
	if a.PhraseCount != 3 {
		t.Errorf("'a' PhraseCount = %d, want 3", a.PhraseCount)
	}
	b := a.Children["b"]
	if !b.Terminal || b.TerminalCount != 3 {
		t.Errorf("'b' = %+v, want terminal with count 3", b)
	}
	c := b.Children["c"]
	if c.PhraseCount != 1 || c.TerminalCount != 1 {
		t.Errorf("'c' = %+v", c)
	}
}

func TestIndexesDoNotShareNodes(t *testing.T) {
	first := newIndex(t, "shared prefix")
	second := newIndex(t, "shared other")

	if err := first.Insert("shared prefix"); err != nil {
		t.Fatal(err)
	}

	got, _ := second.Complete("shared", 10)
	if len(got) != 1 || got[0].Phrase != "shared other" || got[0].Frequency != 1 {
		t.Errorf("second index saw first index's data: %+v", got)
	}
}

func TestStats(t *testing.T) {
	idx := newIndex(t, "ab", "ab", "ac d")

	stats := idx.Stats()
	expected := map[string]int{
		"phrases":         3,
		"distinctPhrases": 2,
		"nodes":           5,
		"words":           3,
	}
	if !reflect.DeepEqual(stats, expected) {
		t.Errorf("Stats() = %v, want %v", stats, expected)
	}
}

func TestUnicodePhrases(t *testing.T) {
	idx := newIndex(t, "Çhuck Nörris", "çhuck nörris")

	got, err := idx.Autocomplete("ÇH", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("Autocomplete(ÇH) = %q, want both casings", got)
	}
	if _, ok := idx.Dump().Children["ç"]; !ok {
		t.Error("expected lower-cased multibyte child key")
	}
}
