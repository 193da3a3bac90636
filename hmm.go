package jieba

import "math"

// BMES hidden states, used as array indices throughout the decoder.
const (
	stateB = iota // Begin
	stateM        // Middle
	stateE        // End
	stateS        // Single
	numStates
)

// minFloat acts as a soft negative infinity: it survives addition
// without overflowing, but is never mistaken for the best score.
const minFloat float64 = -3.14e100

// predsOf[s] lists the states allowed to transition into s. The
// omitted pairs (B→B, B→S, M→B, M→S, E→M, E→E, S→M, S→E) are the
// forbidden transitions.
var predsOf = [numStates][2]int{
	stateB: {stateE, stateS},
	stateM: {stateB, stateM},
	stateE: {stateB, stateM},
	stateS: {stateE, stateS},
}

// HMM holds the shipped BMES parameters: start, transition, and
// emission log-probabilities. Training a model is out of
// scope here — they are constants shipped with the package.
type HMM struct {
	start [numStates]float64
	trans [numStates][numStates]float64 // trans[prev][next]
	emit  map[rune][numStates]float64
}

// NewHMM builds an HMM from explicit parameter tables. Missing
// emissions fall back to minFloat at lookup time.
func NewHMM(start [numStates]float64, trans [numStates][numStates]float64, emit map[rune][numStates]float64) *HMM {
	return &HMM{start: start, trans: trans, emit: emit}
}

func (h *HMM) emission(state int, r rune) float64 {
	if v, ok := h.emit[r]; ok {
		return v[state]
	}
	return minFloat
}

// decode runs Viterbi over chars and returns the best BMES state
// sequence. chars must have length >= 1; a single scalar trivially
// decodes to Single.
func (h *HMM) decode(chars []rune) []int {
	n := len(chars)
	states := make([]int, n)
	if n == 1 {
		states[0] = stateS
		return states
	}

	v := make([][numStates]float64, n)
	back := make([][numStates]int, n)

	for s := 0; s < numStates; s++ {
		v[0][s] = h.start[s] + h.emission(s, chars[0])
	}

	for t := 1; t < n; t++ {
		for s := 0; s < numStates; s++ {
			best := math.Inf(-1)
			bestPrev := predsOf[s][0]
			for _, p := range predsOf[s] {
				score := v[t-1][p] + h.trans[p][s]
				if score >= best {
					best = score
					bestPrev = p
				}
			}
			v[t][s] = best + h.emission(s, chars[t])
			back[t][s] = bestPrev
		}
	}

	last := n - 1
	end := stateS
	if v[last][stateE] >= v[last][stateS] {
		end = stateE
	}
	states[last] = end
	cur := end
	for t := last; t > 0; t-- {
		cur = back[t][cur]
		states[t-1] = cur
	}
	return states
}

// groupBMES folds a state sequence into words: a run of B (M*) E, or
// a lone S, each form one word.
func groupBMES(chars []rune, states []int) []string {
	words := make([]string, 0, len(states))
	start := 0
	for i, s := range states {
		if s == stateE || s == stateS {
			words = append(words, string(chars[start:i+1]))
			start = i + 1
		}
	}
	return words
}
