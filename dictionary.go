package jieba

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// entry is the value stored at each terminal node of the prefix trie.
type entry struct {
	freq int
	tag  string
}

// Dictionary holds the word -> (frequency, tag) mapping used to drive
// segmentation, together with a prefix index over its keys.
//
// The prefix index is a github.com/tchap/go-patricia/v2/patricia trie
// keyed on the UTF-8 byte encoding of each word. Concatenating whole
// runes never produces a false byte-prefix across a rune boundary, so
// prefixScan can walk the trie on bytes while reasoning about matches
// in scalar (rune) positions.
type Dictionary struct {
	mu        sync.RWMutex
	trie      *patricia.Trie
	totalFreq int64
	logger    *log.Logger
}

// NewDictionary returns an empty dictionary.
func NewDictionary(logger *log.Logger) *Dictionary {
	if logger == nil {
		logger = discardLogger()
	}
	return &Dictionary{trie: patricia.NewTrie(), logger: logger}
}

// Load parses "word freq [tag]" lines from r, merging them into the
// dictionary. Re-loading merges: for duplicate words the latest
// (freq, tag) wins. Lines are applied as they are parsed — load is
// partial-on-error: a malformed line aborts the load and returns a
// *DictParseError, but every line before it has already been merged.
// Use SaveSnapshot/LoadSnapshot for an all-or-nothing reload.
func (d *Dictionary) Load(r io.Reader) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			d.logger.Warnf("dictionary load: stopping at line %d: missing frequency", lineNo)
			return &DictParseError{Line: lineNo, Cause: "missing frequency"}
		}
		word := fields[0]
		freq, err := strconv.Atoi(fields[1])
		if err != nil || freq < 0 {
			d.logger.Warnf("dictionary load: stopping at line %d: invalid frequency", lineNo)
			return &DictParseError{Line: lineNo, Cause: "invalid frequency"}
		}
		tag := ""
		if len(fields) >= 3 {
			tag = fields[2]
		}
		d.insertLocked(word, freq, tag)
	}
	if err := scanner.Err(); err != nil {
		return &IoError{Err: err}
	}
	d.logger.Debugf("dictionary load: merged %d line(s)", lineNo)
	return nil
}

// Insert adds or updates word with an explicit frequency and tag.
func (d *Dictionary) Insert(word string, freq int, tag string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insertLocked(word, freq, tag)
}

func (d *Dictionary) insertLocked(word string, freq int, tag string) {
	key := patricia.Prefix(word)
	if old := d.trie.Get(key); old != nil {
		d.totalFreq -= int64(old.(*entry).freq)
	}
	d.trie.Set(key, &entry{freq: freq, tag: tag})
	d.totalFreq += int64(freq)
}

// Remove deletes word from the dictionary, updating total_freq.
// Proper-prefix entries belonging to other surviving words are
// untouched — the underlying trie only ever stores terminal keys, so
// there is nothing to reconcile.
func (d *Dictionary) Remove(word string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := patricia.Prefix(word)
	if old := d.trie.Get(key); old != nil {
		d.totalFreq -= int64(old.(*entry).freq)
		d.trie.Delete(key)
	}
}

// HasWord reports whether word is a terminal key in the dictionary.
func (d *Dictionary) HasWord(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trie.Get(patricia.Prefix(word)) != nil
}

// Frequency returns word's stored frequency, or 0 if absent.
func (d *Dictionary) Frequency(word string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v := d.trie.Get(patricia.Prefix(word)); v != nil {
		return v.(*entry).freq
	}
	return 0
}

// Tag returns word's stored part-of-speech tag and whether it exists.
func (d *Dictionary) Tag(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v := d.trie.Get(patricia.Prefix(word)); v != nil {
		return v.(*entry).tag, true
	}
	return "", false
}

// TotalFreq returns the sum of all entry frequencies.
func (d *Dictionary) TotalFreq() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.totalFreq
}

// prefixScan returns, in ascending order, every end index j > i such
// that chars[i:j] is a terminal dictionary key. Implemented with
// Trie.VisitPrefixes over the UTF-8 remainder starting at chars[i],
// which visits exactly the stored keys that prefix it — our
// terminal-only contract, in time proportional to matched depth.
func (d *Dictionary) prefixScan(chars []rune, i int) []int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	remainder := []byte(string(chars[i:]))
	var hits []int
	d.trie.VisitPrefixes(patricia.Prefix(remainder), func(prefix patricia.Prefix, item patricia.Item) error {
		if item == nil || len(prefix) == 0 {
			return nil
		}
		runeLen := utf8.RuneCount(prefix)
		hits = append(hits, i+runeLen)
		return nil
	})
	sort.Ints(hits)
	return hits
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
