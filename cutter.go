package jieba

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cutter composes the dictionary, DAG builder, MP route solver, and
// HMM decoder into the three public cutting modes. A Cutter's
// dictionary and trie are shared by reference across calls; per-cut
// scratch (DAG, route, rune index) is allocated fresh and released at
// the end of each call.
type Cutter struct {
	dict   *Dictionary
	hmm    *HMM
	logger *log.Logger
	cache  *lru.Cache[cacheKey, []Token]
}

type cacheKey struct {
	text string
	mode Mode
	hmm  bool
}

// CutterOption configures a Cutter at construction time.
type CutterOption func(*Cutter)

// WithLogger overrides the Cutter's logger.
func WithLogger(l *log.Logger) CutterOption {
	return func(c *Cutter) { c.logger = l }
}

// WithRouteCache enables the whole-call result cache for Cut/Tokenize/
// Tag, sized for size entries. Disabled (size <= 0) by default; never
// applied to CutAll.
func WithRouteCache(size int) CutterOption {
	return func(c *Cutter) {
		if size <= 0 {
			c.cache = nil
			return
		}
		cache, err := lru.New[cacheKey, []Token](size)
		if err != nil {
			c.logger.Warnf("route cache disabled: %v", err)
			return
		}
		c.cache = cache
	}
}

// NewCutter builds a Cutter over an existing dictionary and HMM.
func NewCutter(dict *Dictionary, hmm *HMM, opts ...CutterOption) *Cutter {
	c := &Cutter{dict: dict, hmm: hmm, logger: discardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefaultCutter builds a Cutter over the embedded default
// dictionary and the shipped HMM parameters.
func NewDefaultCutter(opts ...CutterOption) *Cutter {
	return NewCutter(defaultDictionary(), defaultHMM(), opts...)
}

// Dictionary returns the cutter's underlying dictionary.
func (c *Cutter) Dictionary() *Dictionary {
	return c.dict
}

func (c *Cutter) invalidateCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// LoadDict merges word/freq/tag lines from r into the dictionary
//. See DictParseError / IoError for the reported failures.
func (c *Cutter) LoadDict(r io.Reader) error {
	err := c.dict.Load(r)
	c.invalidateCache()
	return err
}

// AddWord inserts or updates word. If freq <= 0, a frequency is
// computed so that word becomes the MP-preferred segmentation of
// itself; the frequency actually stored is returned.
func (c *Cutter) AddWord(word string, freq int, tag string) int {
	if freq <= 0 {
		freq = c.SuggestFreq(word)
	}
	c.dict.Insert(word, freq, tag)
	c.invalidateCache()
	return freq
}

// RemoveWord deletes word from the dictionary.
func (c *Cutter) RemoveWord(word string) {
	c.dict.Remove(word)
	c.invalidateCache()
}

// SuggestFreq computes a frequency that forces word to be chosen as
// its own MP segmentation, using the dictionary's current state
// (before word is inserted) and the MP decomposition word = w1…wk
//: max(1, ceil(T * ∏ freq(wi)/T)).
func (c *Cutter) SuggestFreq(word string) int {
	total := c.dict.TotalFreq()
	if total < 1 {
		total = 1
	}
	pieces := c.Cut(word, false)
	prod := 1.0
	for _, p := range pieces {
		f := c.dict.Frequency(p)
		if f < 1 {
			f = 1
		}
		prod *= float64(f) / float64(total)
	}
	suggested := int(math.Ceil(prod * float64(total)))
	if suggested < 1 {
		suggested = 1
	}
	return suggested
}

// Cut segments text in accurate mode: MP route over the dictionary
// DAG, with HMM recognition of out-of-vocabulary runs when hmm is
// true.
func (c *Cutter) Cut(text string, hmm bool) []string {
	tokens := c.Tokenize(text, ModeDefault, hmm)
	return tokensToWords(tokens)
}

// CutForSearch runs Cut, then additionally splits long tokens into
// dictionary sub-words for search indexing.
func (c *Cutter) CutForSearch(text string, hmm bool) []string {
	tokens := c.Tokenize(text, ModeSearch, hmm)
	return tokensToWords(tokens)
}

// CutAll emits, for every start position, every dictionary match of
// length >= 2, plus single-scalar atoms for positions no multi-scalar
// match covers (coarse mode).
func (c *Cutter) CutAll(text string) []string {
	if text == "" {
		return []string{}
	}
	tokens := c.cutAllTokens(text)
	return tokensToWords(tokens)
}

// Tokenize segments text and returns each token's byte span in text
//. Mode selects between Cut's behavior (ModeDefault) and
// CutForSearch's behavior (ModeSearch).
func (c *Cutter) Tokenize(text string, mode Mode, hmm bool) []Token {
	if text == "" {
		return []Token{}
	}
	if c.cache != nil {
		key := cacheKey{text: text, mode: mode, hmm: hmm}
		if cached, ok := c.cache.Get(key); ok {
			return cached
		}
		tokens := c.tokenizeUncached(text, mode, hmm)
		c.cache.Add(key, tokens)
		return tokens
	}
	return c.tokenizeUncached(text, mode, hmm)
}

// Dictionary mutation between the sub-calls that follow (DAG scans,
// HasWord/Frequency/Tag lookups) can interleave with a single Tokenize
// call: each sub-call locks the dictionary for its own duration rather
// than the whole call taking one lock, since Dictionary's RWMutex is
// not safe to re-enter (a writer queued behind the outer RLock would
// then block the inner RLock forever).
func (c *Cutter) tokenizeUncached(text string, mode Mode, hmm bool) []Token {
	base := c.cutBase(text, hmm)
	if mode == ModeDefault {
		return base
	}
	return expandForSearch(text, base, c.dict)
}

// Tag runs Cut and pairs each token with a part-of-speech tag: the
// dictionary's tag if the word is known, otherwise a heuristic (eng
// for pure ASCII letters, m for pure digits, x otherwise).
func (c *Cutter) Tag(text string, hmm bool) []TaggedToken {
	tokens := c.Tokenize(text, ModeDefault, hmm)
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, t := range tokens {
		tag, ok := c.dict.Tag(t.Text)
		if !ok {
			tag = heuristicTag(t.Text)
		}
		tagged = append(tagged, TaggedToken{Text: t.Text, Tag: tag})
	}
	return tagged
}

func heuristicTag(word string) string {
	allLetters := true
	allDigits := true
	dots := 0
	for _, r := range word {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			allLetters = false
		}
		if r == '.' {
			dots++
			continue
		}
		if r < '0' || r > '9' {
			allDigits = false
		}
	}
	if allLetters {
		return "eng"
	}
	if allDigits && dots <= 1 {
		return "m"
	}
	return "x"
}

func tokensToWords(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}

// cutBase runs block pre-segmentation over the whole input and
// segments each Han run via DAG+MP(+HMM), each alphanumeric run as a
// single token, and emits every other scalar verbatim.
func (c *Cutter) cutBase(text string, hmm bool) []Token {
	idx := indexText(text)
	tokens := make([]Token, 0, len(idx.chars))

	n := len(idx.chars)
	i := 0
	for i < n {
		switch classify(idx.chars[i]) {
		case classHan:
			j := i + 1
			for j < n && classify(idx.chars[j]) == classHan {
				j++
			}
			tokens = append(tokens, c.segmentHanRun(idx, i, j, hmm)...)
			i = j
		case classAlnum:
			j := i + 1
			for j < n && classify(idx.chars[j]) == classAlnum {
				j++
			}
			start, end := idx.byteSpan(i, j)
			tokens = append(tokens, Token{Text: idx.text(i, j), Start: start, End: end})
			i = j
		default:
			start, end := idx.byteSpan(i, i+1)
			tokens = append(tokens, Token{Text: idx.text(i, i+1), Start: start, End: end})
			i++
		}
	}
	return tokens
}

// segmentHanRun applies DAG + MP route over chars[from:to], folding
// maximal runs of adjacent out-of-vocabulary single scalars through
// the HMM decoder when hmm is true.
func (c *Cutter) segmentHanRun(idx runeIndex, from, to int, hmm bool) []Token {
	run := idx.chars[from:to]
	dag := buildDAG(run, c.dict)
	route := solveRoute(run, dag, c.dict)

	tokens := make([]Token, 0, len(run))
	gapStart := -1 // local index (within run) of the pending OOV gap, or -1

	flushGap := func(gapEnd int) {
		if gapStart < 0 {
			return
		}
		gapChars := run[gapStart:gapEnd]
		if hmm {
			states := c.hmm.decode(gapChars)
			for _, w := range groupBMES(gapChars, states) {
				wlen := utf8.RuneCountInString(w)
				start, end := idx.byteSpan(from+gapStart, from+gapStart+wlen)
				tokens = append(tokens, Token{Text: w, Start: start, End: end})
				gapStart += wlen
			}
		} else {
			for k := gapStart; k < gapEnd; k++ {
				start, end := idx.byteSpan(from+k, from+k+1)
				tokens = append(tokens, Token{Text: string(run[k]), Start: start, End: end})
			}
		}
		gapStart = -1
	}

	for i := 0; i < len(run); {
		j := route[i].next
		if j-i == 1 && !c.dict.HasWord(string(run[i])) {
			if gapStart < 0 {
				gapStart = i
			}
			i = j
			continue
		}
		flushGap(i)
		start, end := idx.byteSpan(from+i, from+j)
		tokens = append(tokens, Token{Text: idx.text(from+i, from+j), Start: start, End: end})
		i = j
	}
	flushGap(len(run))
	return tokens
}

// cutAllTokens implements coarse mode: every dictionary match of
// length >= 2 at every start position, plus single-scalar atoms for
// positions no such match covers, ordered by ascending start then
// ascending end.
func (c *Cutter) cutAllTokens(text string) []Token {
	idx := indexText(text)
	n := len(idx.chars)
	var spans [][2]int

	i := 0
	for i < n {
		switch classify(idx.chars[i]) {
		case classHan:
			j := i + 1
			for j < n && classify(idx.chars[j]) == classHan {
				j++
			}
			spans = append(spans, cutAllHanSpans(idx.chars[i:j], i, c.dict)...)
			i = j
		case classAlnum:
			j := i + 1
			for j < n && classify(idx.chars[j]) == classAlnum {
				j++
			}
			spans = append(spans, [2]int{i, j})
			i = j
		default:
			spans = append(spans, [2]int{i, i + 1})
			i++
		}
	}

	sortSpans(spans)
	tokens := make([]Token, 0, len(spans))
	for _, sp := range spans {
		start, end := idx.byteSpan(sp[0], sp[1])
		tokens = append(tokens, Token{Text: idx.text(sp[0], sp[1]), Start: start, End: end})
	}
	return tokens
}

func cutAllHanSpans(run []rune, base int, dict *Dictionary) [][2]int {
	n := len(run)
	dag := buildDAG(run, dict)
	covered := make([]bool, n)
	var spans [][2]int
	for i := 0; i < n; i++ {
		for _, j := range dag[i] {
			if j-i < 2 {
				continue
			}
			spans = append(spans, [2]int{base + i, base + j})
			for k := i; k < j; k++ {
				covered[k] = true
			}
		}
	}
	for i := 0; i < n; i++ {
		if !covered[i] {
			spans = append(spans, [2]int{base + i, base + i + 1})
		}
	}
	return spans
}

func sortSpans(spans [][2]int) {
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spanLess(spans[j], spans[j-1]); j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}

func spanLess(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

// expandForSearch implements CutForSearch's re-splitting rule: every
// token of length >= 3 additionally emits every dictionary word that
// is a length-2 substring of it, and, once the token is longer than 3
// scalars, every dictionary word that is a length-3 substring too —
// fragments never include the token's own full length, only strictly
// shorter ones. Fragments come in ascending length then ascending
// start offset, after the base token.
func expandForSearch(text string, base []Token, dict *Dictionary) []Token {
	out := make([]Token, 0, len(base))
	for _, t := range base {
		out = append(out, t)
		chars := []rune(t.Text)
		if len(chars) < 3 {
			continue
		}
		localIdx := indexText(t.Text)
		fragLens := []int{2}
		if len(chars) > 3 {
			fragLens = append(fragLens, 3)
		}
		for _, fragLen := range fragLens {
			for s := 0; s+fragLen <= len(chars); s++ {
				word := string(chars[s : s+fragLen])
				if !dict.HasWord(word) {
					continue
				}
				fs, fe := localIdx.byteSpan(s, s+fragLen)
				out = append(out, Token{Text: word, Start: t.Start + fs, End: t.Start + fe})
			}
		}
	}
	return out
}
