package jieba

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	d := NewDictionary(nil)
	if err := d.Load(strings.NewReader("你好 100 i\n世界 200 n\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var buf bytes.Buffer
	if err := d.SaveSnapshot(&buf); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	restored := NewDictionary(nil)
	if err := restored.LoadSnapshot(&buf); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if restored.Frequency("你好") != 100 || restored.Frequency("世界") != 200 {
		t.Fatalf("frequencies did not survive the round trip")
	}
	if restored.TotalFreq() != d.TotalFreq() {
		t.Fatalf("want total_freq %d, got %d", d.TotalFreq(), restored.TotalFreq())
	}
	tag, ok := restored.Tag("你好")
	if !ok || tag != "i" {
		t.Fatalf("want tag i, got %q ok=%v", tag, ok)
	}
}

func TestLoadSnapshotLeavesDictionaryUntouchedOnError(t *testing.T) {
	d := NewDictionary(nil)
	d.Insert("原词", 5, "")

	err := d.LoadSnapshot(strings.NewReader("not a valid snapshot"))
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if !d.HasWord("原词") {
		t.Fatal("expected the dictionary to be untouched after a failed LoadSnapshot")
	}
}
