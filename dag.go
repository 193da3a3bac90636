package jieba

// buildDAG produces, for each start index i in chars, the ascending
// list of end indices j such that chars[i:j] is a dictionary word.
// i -> i+1 is always present as a fallback when no dictionary word
// starts at i; dag[i] is never empty.
func buildDAG(chars []rune, dict *Dictionary) [][]int {
	n := len(chars)
	dag := make([][]int, n)
	for i := 0; i < n; i++ {
		hits := dict.prefixScan(chars, i)
		if len(hits) == 0 {
			dag[i] = []int{i + 1}
			continue
		}
		dag[i] = hits
	}
	return dag
}
