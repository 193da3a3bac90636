package jieba

import (
	"bytes"
	_ "embed"
	"encoding/json"
)

//go:embed internal/dictdata/data/default_dict.txt
var embeddedDict []byte

//go:embed internal/dictdata/data/prob_emit.json
var embeddedEmit []byte

// defaultDictionary builds the Dictionary shipped with the package by
// parsing the embedded word list through Dictionary.Load. A load
// failure here means the embedded resource itself is malformed, which
// is a build-time defect rather than something a caller can recover
// from, so it panics rather than returning an error.
func defaultDictionary() *Dictionary {
	d := NewDictionary(nil)
	if err := d.Load(bytes.NewReader(embeddedDict)); err != nil {
		panic("jieba: embedded default dictionary failed to load: " + err.Error())
	}
	return d
}

// defaultHMM builds the shipped HMM: jieba's published start and
// transition probabilities, plus an emission table parsed from
// the embedded prob_emit.json. The JSON shape is state -> rune ->
// log-probability, matching how the reference implementation ships
// its emission table; states or runes absent from the table fall back
// to minFloat at lookup time rather than the zero value.
func defaultHMM() *HMM {
	start := [numStates]float64{
		stateB: -0.26268660809250016,
		stateE: minFloat,
		stateM: minFloat,
		stateS: -1.4652633398537678,
	}
	trans := [numStates][numStates]float64{
		stateB: {stateE: -0.51082562376599, stateM: -0.916290731874155},
		stateE: {stateB: -0.5897149736854513, stateS: -0.8085250474669937},
		stateM: {stateE: -0.33344856811948514, stateM: -1.2603623820268226},
		stateS: {stateB: -0.7211965654669841, stateS: -0.6658631448798212},
	}

	var raw map[string]map[string]float64
	if err := json.Unmarshal(embeddedEmit, &raw); err != nil {
		panic("jieba: embedded emission table failed to parse: " + err.Error())
	}

	stateNames := [numStates]string{stateB: "B", stateM: "M", stateE: "E", stateS: "S"}
	emit := make(map[rune][numStates]float64)
	for s, name := range stateNames {
		for word, logProb := range raw[name] {
			r := []rune(word)[0]
			row := emit[r]
			if row == ([numStates]float64{}) {
				for i := range row {
					row[i] = minFloat
				}
			}
			row[s] = logProb
			emit[r] = row
		}
	}

	return NewHMM(start, trans, emit)
}
