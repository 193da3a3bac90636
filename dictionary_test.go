package jieba

import (
	"strings"
	"testing"
)

func TestDictionaryLoadMerge(t *testing.T) {
	d := NewDictionary(nil)
	err := d.Load(strings.NewReader("你好 100 i\n世界 200 n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.HasWord("你好") || !d.HasWord("世界") {
		t.Fatal("expected both words to be loaded")
	}
	if got := d.Frequency("你好"); got != 100 {
		t.Fatalf("want freq 100, got %d", got)
	}
	if got := d.TotalFreq(); got != 300 {
		t.Fatalf("want total_freq 300, got %d", got)
	}

	// Reloading the same word updates freq/tag and total_freq.
	if err := d.Load(strings.NewReader("你好 150 i\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.Frequency("你好"); got != 150 {
		t.Fatalf("want freq 150 after reload, got %d", got)
	}
	if got := d.TotalFreq(); got != 350 {
		t.Fatalf("want total_freq 350, got %d", got)
	}
}

func TestDictionaryLoadPartialOnError(t *testing.T) {
	d := NewDictionary(nil)
	err := d.Load(strings.NewReader("你好 100\n世界\n书 50\n"))
	if err == nil {
		t.Fatal("expected a DictParseError")
	}
	if _, ok := err.(*DictParseError); !ok {
		t.Fatalf("want *DictParseError, got %T", err)
	}

	// The line before the failing one was already merged; the line
	// after it was never reached.
	if !d.HasWord("你好") {
		t.Fatal("expected the line before the failure to be merged")
	}
	if d.HasWord("书") {
		t.Fatal("did not expect a line after the failure to be merged")
	}
}

func TestDictionaryInsertRemove(t *testing.T) {
	d := NewDictionary(nil)
	d.Insert("词语", 10, "n")
	if !d.HasWord("词语") {
		t.Fatal("expected word to exist after insert")
	}
	tag, ok := d.Tag("词语")
	if !ok || tag != "n" {
		t.Fatalf("want tag n, got %q ok=%v", tag, ok)
	}
	d.Remove("词语")
	if d.HasWord("词语") {
		t.Fatal("expected word to be gone after remove")
	}
	if d.Frequency("词语") != 0 {
		t.Fatal("expected frequency 0 for a removed word")
	}
}

func TestPrefixScanOrdering(t *testing.T) {
	d := NewDictionary(nil)
	d.Insert("中", 1, "")
	d.Insert("中国", 2, "")
	d.Insert("中国人", 3, "")
	chars := []rune("中国人民")
	hits := d.prefixScan(chars, 0)
	want := []int{1, 2, 3}
	if len(hits) != len(want) {
		t.Fatalf("want %v, got %v", want, hits)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Fatalf("want %v, got %v", want, hits)
		}
	}
}

func TestDAGNeverEmptyAndSorted(t *testing.T) {
	d := NewDictionary(nil)
	d.Insert("好书", 10, "n")
	chars := []rune("这是一本好书")
	dag := buildDAG(chars, d)
	for i, ends := range dag {
		if len(ends) == 0 {
			t.Fatalf("dag[%d] must not be empty", i)
		}
		for k := 1; k < len(ends); k++ {
			if ends[k] <= ends[k-1] {
				t.Fatalf("dag[%d] not strictly ascending: %v", i, ends)
			}
		}
	}
}
