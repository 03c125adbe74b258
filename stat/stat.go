package stat

type Handler struct {
	stats Stats
}

// Stats summarizes the transform of one corpus split.
type Stats struct {
	Split string `json:"split"`

	// Number of records read
	Records int `json:"records"`

	// Premises kept after consecutive dedup
	Premises int `json:"premises"`

	// Premises dropped because equal to the previous one
	DuplicatePremises int `json:"duplicate_premises"`

	Hypotheses int `json:"hypotheses"`

	// Number of "(" and ")" tokens removed from both fields
	BracketTokens int `json:"bracket_tokens"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler(split string) *Handler {
	return &Handler{
		stats: Stats{Split: split},
	}
}

// Aggregate accounts one record. premiseKept tells whether its premise
// survived dedup, brackets is the number of removed bracket tokens.
func (h *Handler) Aggregate(premiseKept bool, brackets int) {
	h.stats.Records++
	h.stats.Hypotheses++
	h.stats.BracketTokens += brackets

	if premiseKept {
		h.stats.Premises++
	} else {
		h.stats.DuplicatePremises++
	}
}

// Sum adds up the stats of several splits. The Split name is kept empty.
func Sum(all []Stats) Stats {
	var total Stats
	for _, s := range all {
		total.Records += s.Records
		total.Premises += s.Premises
		total.DuplicatePremises += s.DuplicatePremises
		total.Hypotheses += s.Hypotheses
		total.BracketTokens += s.BracketTokens
	}
	return total
}
