package jieba

import (
	"io"
	"os"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// dictSnapshot is the on-disk shape of a compiled dictionary: every
// entry plus the running total at save time. LoadSnapshot recomputes
// total_freq by re-summing the entries; the stored total is not read
// back.
type dictSnapshot struct {
	TotalFreq int64          `msgpack:"t"`
	Words     []wordSnapshot `msgpack:"w"`
}

type wordSnapshot struct {
	Word string `msgpack:"w"`
	Freq int    `msgpack:"f"`
	Tag  string `msgpack:"g,omitempty"`
}

// SaveSnapshot writes the dictionary's current contents to w as
// msgpack, so a caller can skip re-parsing a large text dictionary on
// the next process start.
func (d *Dictionary) SaveSnapshot(w io.Writer) error {
	d.mu.RLock()
	snap := dictSnapshot{TotalFreq: d.totalFreq}
	d.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		e := item.(*entry)
		snap.Words = append(snap.Words, wordSnapshot{Word: string(prefix), Freq: e.freq, Tag: e.tag})
		return nil
	})
	d.mu.RUnlock()

	enc := msgpack.NewEncoder(w)
	return enc.Encode(&snap)
}

// LoadSnapshot replaces the dictionary's contents with a snapshot
// previously written by SaveSnapshot. Unlike Load, this is all-or-
// nothing: a decode failure leaves the dictionary untouched, which is
// how a caller recovers an atomic reload after a partial-on-error
// Load.
func (d *Dictionary) LoadSnapshot(r io.Reader) error {
	var snap dictSnapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return &IoError{Err: err}
	}

	trie := patricia.NewTrie()
	var total int64
	for _, ws := range snap.Words {
		trie.Set(patricia.Prefix(ws.Word), &entry{freq: ws.Freq, tag: ws.Tag})
		total += int64(ws.Freq)
	}

	d.mu.Lock()
	d.trie = trie
	d.totalFreq = total
	d.mu.Unlock()
	return nil
}

// SaveSnapshotFile is a convenience wrapper around SaveSnapshot for a
// path on disk.
func (d *Dictionary) SaveSnapshotFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IoError{Err: err}
	}
	defer f.Close()
	return d.SaveSnapshot(f)
}

// LoadSnapshotFile is a convenience wrapper around LoadSnapshot for a
// path on disk.
func (d *Dictionary) LoadSnapshotFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IoError{Err: err}
	}
	defer f.Close()
	return d.LoadSnapshot(f)
}
