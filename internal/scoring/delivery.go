package scoring

// scoreSpeechRate converts the word count to words per minute and picks the
// first band whose upper bound covers it. The unbounded top band keeps
// coverage total, fractional rates included.
func (e *Engine) scoreSpeechRate(wordCount int) int {
	wpm := float64(wordCount) / e.rubric.DurationSec * 60
	for _, b := range e.rubric.SpeechBands {
		if b.Max <= 0 || wpm <= b.Max {
			return b.Score
		}
	}
	return 2
}

// scoreClarity rates filler density. Fillers are counted as whole words or
// phrases over the lowercased transcript, so "so" does not hit inside
// "sociology".
func (e *Engine) scoreClarity(lower string, wordCount int) int {
	if wordCount == 0 {
		return 3
	}
	count := 0
	for _, re := range e.fillers {
		count += len(re.FindAllStringIndex(lower, -1))
	}
	rate := float64(count) / float64(wordCount) * 100
	switch {
	case rate <= 3:
		return 15
	case rate <= 6:
		return 12
	case rate <= 9:
		return 9
	case rate <= 12:
		return 6
	default:
		return 3
	}
}
