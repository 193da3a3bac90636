package jieba

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// LoadDictFile merges a word/freq/tag dictionary file into the
// dictionary without buffering it fully into Go's heap: the file is
// mapped read-only and handed to Load as a byte-backed reader, so the
// OS pages it in on demand instead of the process copying it up
// front. Intended for user-supplied dictionaries too large to
// comfortably read whole.
func (d *Dictionary) LoadDictFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IoError{Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &IoError{Err: err}
	}
	if info.Size() == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return &IoError{Err: err}
	}
	defer m.Unmap()

	return d.Load(bytes.NewReader(m))
}
