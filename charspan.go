package jieba

// runeIndex maps a string's runes to their byte offsets so that
// per-cut scratch can walk scalar positions while still being able to
// report byte spans for tokenize().
type runeIndex struct {
	chars []rune
	// byteStart has len(chars)+1 entries; byteStart[k] is the byte
	// offset of chars[k], and byteStart[len(chars)] is len(text).
	byteStart []int
}

func indexText(text string) runeIndex {
	chars := make([]rune, 0, len(text))
	starts := make([]int, 0, len(text)+1)
	for i, r := range text {
		chars = append(chars, r)
		starts = append(starts, i)
	}
	starts = append(starts, len(text))
	return runeIndex{chars: chars, byteStart: starts}
}

func (x runeIndex) byteSpan(i, j int) (int, int) {
	return x.byteStart[i], x.byteStart[j]
}

func (x runeIndex) text(i, j int) string {
	return string(x.chars[i:j])
}

// runeClass classifies a scalar for block pre-segmentation.
type runeClass int

const (
	classOther runeClass = iota
	classHan
	classAlnum
)

// isHan reports whether r falls in a CJK Unified Ideograph block or
// one of the CJK compatibility ideograph ranges.
func isHan(r rune) bool {
	switch {
	case r >= 0x3400 && r <= 0x4DBF: // CJK Unified Ideographs Extension A
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK Compatibility Ideographs
		return true
	case r >= 0x20000 && r <= 0x2A6DF: // CJK Unified Ideographs Extension B
		return true
	case r >= 0x2A700 && r <= 0x2EBEF: // Extensions C–F
		return true
	case r >= 0x2F800 && r <= 0x2FA1F: // CJK Compatibility Ideographs Supplement
		return true
	default:
		return false
	}
}

// isAlnum reports whether r is an ASCII letter or digit. Other
// characters, including full-width forms and punctuation, fall to
// classOther and are emitted as single-scalar tokens.
func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func classify(r rune) runeClass {
	switch {
	case isHan(r):
		return classHan
	case isAlnum(r):
		return classAlnum
	default:
		return classOther
	}
}
