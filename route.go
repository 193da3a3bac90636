package jieba

import "math"

// routeStep is one entry of the right-to-left DP over the DAG.
type routeStep struct {
	logProb float64
	next    int
}

// solveRoute computes route[i] = (best_log_prob, best_end) for every
// i in [0, len(chars)], with route[N] = (0, N) as the base case.
// Ties are broken toward the largest j: dag[i] is ascending, and
// scanning it in order while accepting on ">=" keeps the last (and
// therefore largest) j on a tie, matching tie-break rule.
func solveRoute(chars []rune, dag [][]int, dict *Dictionary) []routeStep {
	n := len(chars)
	total := dict.TotalFreq()
	if total < 1 {
		total = 1
	}
	logTotal := math.Log(float64(total))

	route := make([]routeStep, n+1)
	route[n] = routeStep{logProb: 0, next: n}
	for i := n - 1; i >= 0; i-- {
		var best routeStep
		haveBest := false
		for _, j := range dag[i] {
			freq := dict.Frequency(string(chars[i:j]))
			if freq < 1 {
				freq = 1
			}
			logFreq := math.Log(float64(freq)) - logTotal
			score := logFreq + route[j].logProb
			if !haveBest || score >= best.logProb {
				best = routeStep{logProb: score, next: j}
				haveBest = true
			}
		}
		route[i] = best
	}
	return route
}
