package jieba

import (
	"math"
	"testing"
)

// bruteForceBestRoute enumerates every path through the DAG and
// returns its log-probability, for checking solveRoute's optimality
// on small inputs.
func bruteForceBestRoute(chars []rune, dag [][]int, dict *Dictionary) float64 {
	n := len(chars)
	total := dict.TotalFreq()
	if total < 1 {
		total = 1
	}
	logTotal := math.Log(float64(total))

	var best float64
	haveBest := false
	var walk func(i int, acc float64)
	walk = func(i int, acc float64) {
		if i == n {
			if !haveBest || acc > best {
				best = acc
				haveBest = true
			}
			return
		}
		for _, j := range dag[i] {
			freq := dict.Frequency(string(chars[i:j]))
			if freq < 1 {
				freq = 1
			}
			logFreq := math.Log(float64(freq)) - logTotal
			walk(j, acc+logFreq)
		}
	}
	walk(0, 0)
	return best
}

func TestMPOptimality(t *testing.T) {
	d := NewDictionary(nil)
	d.Insert("南京", 1000, "ns")
	d.Insert("南京市", 3000, "ns")
	d.Insert("京市", 5, "n")
	d.Insert("长江", 1200, "ns")
	d.Insert("长江大桥", 3000, "ns")
	d.Insert("大桥", 900, "n")

	chars := []rune("南京市长江大桥")
	dag := buildDAG(chars, d)
	route := solveRoute(chars, dag, d)

	want := bruteForceBestRoute(chars, dag, d)
	got := route[0].logProb
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("solveRoute not optimal: want %v, got %v", want, got)
	}
}

func TestMPTieBreakPrefersLargestJ(t *testing.T) {
	d := NewDictionary(nil)
	// With total_freq 6: 甲(2/6) * 乙(3/6) == 1/6 == 甲乙(1/6), so the
	// two single-char path and the one combined-word path score exactly
	// equal (also in float64 log space); the tie must resolve toward
	// the larger j.
	d.Insert("甲", 2, "")
	d.Insert("乙", 3, "")
	d.Insert("甲乙", 1, "")
	chars := []rune("甲乙")
	dag := buildDAG(chars, d)
	route := solveRoute(chars, dag, d)
	if route[0].next != 2 {
		t.Fatalf("want tie-break toward j=2, got next=%d", route[0].next)
	}
}
