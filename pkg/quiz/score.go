package quiz

// Answers maps a question id to the chosen option value.
type Answers map[string]string

// Scores counts answers per profile.
type Scores map[ProfileKey]int

// Tally scores answers against questions. Answers for unknown questions and
// values that are not options of their question count for nothing.
func Tally(answers Answers, questions []Question) Scores {
	scores := Scores{
		ProfileSocial:     0,
		ProfileRadical:    0,
		ProfileConsciente: 0,
		ProfileSolo:       0,
	}
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt, ok := q.Option(value); ok {
			scores[opt.Profile]++
		}
	}
	return scores
}

// Winner picks the highest score, keeping the earlier key in TieBreakOrder
// on ties.
func (s Scores) Winner() ProfileKey {
	best := TieBreakOrder[0]
	for _, k := range TieBreakOrder[1:] {
		if s[k] > s[best] {
			best = k
		}
	}
	return best
}

// ResolveProfile returns the winning profile for answers. It always returns
// a valid key; with no usable answers the result is TieBreakOrder[0].
func ResolveProfile(answers Answers, questions []Question) ProfileKey {
	return Tally(answers, questions).Winner()
}
