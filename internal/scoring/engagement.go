package scoring

import "context"

// scoreEngagement maps the positive sentiment share onto the engagement
// scale. A missing or failing capability scores the neutral default and is
// flagged as defaulted.
func (e *Engine) scoreEngagement(ctx context.Context, transcript string) (int, bool) {
	if e.sentiment == nil {
		return 9, true
	}
	pos, err := e.sentiment.Positivity(ctx, transcript)
	if err != nil {
		return 9, true
	}
	switch {
	case pos >= 0.9:
		return 15, false
	case pos >= 0.7:
		return 12, false
	case pos >= 0.5:
		return 9, false
	case pos >= 0.3:
		return 6, false
	default:
		return 3, false
	}
}
