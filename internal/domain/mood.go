package domain

// MoodAssignment is the mood resolution for one weather sample. Produced
// fresh per sample, never persisted on its own. SecondaryMoods carries no
// duplicates and never contains the primary mood.
type MoodAssignment struct {
	PrimaryMood    string   `json:"primary_mood"`
	SecondaryMoods []string `json:"secondary_moods"`
}

// Tags returns the primary mood followed by at most max-1 secondary moods,
// the shape persisted on a journal entry.
func (a MoodAssignment) Tags(max int) []string {
	tags := make([]string, 0, max)
	tags = append(tags, a.PrimaryMood)
	for _, m := range a.SecondaryMoods {
		if len(tags) >= max {
			break
		}
		tags = append(tags, m)
	}
	return tags
}

// PromptCandidate is one rendered journaling prompt. Ephemeral, produced per
// generation request.
type PromptCandidate struct {
	Mood      string `json:"mood"`
	Text      string `json:"text"`
	IsPrimary bool   `json:"is_primary"`
}
