package jieba

import "testing"

func TestHMMDecodeSingleScalarIsSingle(t *testing.T) {
	h := defaultHMM()
	states := h.decode([]rune("杭"))
	if len(states) != 1 || states[0] != stateS {
		t.Fatalf("want [S], got %v", states)
	}
}

func TestHMMDecodeRecoversOOVWord(t *testing.T) {
	h := defaultHMM()
	chars := []rune("杭研")
	states := h.decode(chars)
	words := groupBMES(chars, states)
	want := []string{"杭研"}
	if len(words) != 1 || words[0] != want[0] {
		t.Fatalf("want %v, got %v", want, words)
	}
}

func TestGroupBMES(t *testing.T) {
	chars := []rune("一二三四")
	states := []int{stateB, stateM, stateM, stateE}
	got := groupBMES(chars, states)
	want := []string{"一二三四"}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("want %v, got %v", want, got)
	}

	states2 := []int{stateS, stateB, stateE, stateS}
	got2 := groupBMES(chars, states2)
	want2 := []string{"一", "二三", "四"}
	if len(got2) != len(want2) {
		t.Fatalf("want %v, got %v", want2, got2)
	}
	for i := range want2 {
		if got2[i] != want2[i] {
			t.Fatalf("want %v, got %v", want2, got2)
		}
	}
}
