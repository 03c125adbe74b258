package stat

import "testing"

func TestAggregate(t *testing.T) {
	h := NewHandler("dev")
	h.Aggregate(true, 4)
	h.Aggregate(false, 2)
	h.Aggregate(true, 0)

	got := h.Get()
	want := Stats{Split: "dev", Records: 3, Premises: 2, DuplicatePremises: 1, Hypotheses: 3, BracketTokens: 6}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSum(t *testing.T) {
	total := Sum([]Stats{
		{Split: "test", Records: 2, Premises: 1, DuplicatePremises: 1, Hypotheses: 2},
		{Split: "train", Records: 3, Premises: 3, Hypotheses: 3, BracketTokens: 5},
	})

	want := Stats{Records: 5, Premises: 4, DuplicatePremises: 1, Hypotheses: 5, BracketTokens: 5}
	if total != want {
		t.Fatalf("expected %+v, got %+v", want, total)
	}
}
