package app

import (
	"math/rand"
	"slices"
	"strings"

	"skymemo/internal/catalog"
	"skymemo/internal/domain"
)

// DefaultPromptCount is the number of prompt candidates generated when the
// caller does not ask for a specific count.
const DefaultPromptCount = 5

// PromptService resolves moods for a classified weather sample and renders
// journaling prompts from the mood template sets.
type PromptService struct {
	cat *catalog.Catalog
	rng *rand.Rand
}

// NewPromptService creates a PromptService. rng drives template selection and
// the final shuffle; tests pass a fixed-seed source.
func NewPromptService(cat *catalog.Catalog, rng *rand.Rand) *PromptService {
	return &PromptService{cat: cat, rng: rng}
}

// ResolveMoods maps a sample to a primary mood and ordered secondary moods.
// The condition's profile contributes the primary and the initial
// secondaries; the temperature band appends further moods, skipping any
// already present and the primary itself. Insertion order is stable.
func (s *PromptService) ResolveMoods(sample domain.WeatherSample) domain.MoodAssignment {
	profile := s.cat.Profile(sample.Condition)

	secondary := make([]string, len(profile.SecondaryMoods))
	copy(secondary, profile.SecondaryMoods)

	for _, mood := range s.cat.TempMoods[sample.TemperatureCategory] {
		if mood == profile.PrimaryMood || slices.Contains(secondary, mood) {
			continue
		}
		secondary = append(secondary, mood)
	}

	return domain.MoodAssignment{PrimaryMood: profile.PrimaryMood, SecondaryMoods: secondary}
}

// Generate renders up to count prompt candidates for a sample. The mood
// priority list (primary first) is walked once, drawing one unused template
// per mood; if that comes up short the primary mood's remaining templates top
// the list up. Moods without templates are skipped. The result is shuffled,
// so mood priority does not survive into the output order. Fewer than count
// candidates is a defined outcome, not an error.
func (s *PromptService) Generate(sample domain.WeatherSample, count int) []domain.PromptCandidate {
	if count <= 0 {
		count = DefaultPromptCount
	}

	profile := s.cat.Profile(sample.Condition)
	assignment := s.ResolveMoods(sample)

	// Used templates are tracked per call only.
	used := make(map[string]bool)
	candidates := make([]domain.PromptCandidate, 0, count)

	moods := append([]string{assignment.PrimaryMood}, assignment.SecondaryMoods...)
	for _, mood := range moods {
		if len(candidates) >= count {
			break
		}
		tpl, ok := s.pickTemplate(mood, used)
		if !ok {
			continue
		}
		candidates = append(candidates, domain.PromptCandidate{
			Mood:      mood,
			Text:      renderTemplate(tpl, profile.Description, sample.Condition),
			IsPrimary: mood == assignment.PrimaryMood,
		})
	}

	for len(candidates) < count {
		tpl, ok := s.pickTemplate(assignment.PrimaryMood, used)
		if !ok {
			break
		}
		candidates = append(candidates, domain.PromptCandidate{
			Mood:      assignment.PrimaryMood,
			Text:      renderTemplate(tpl, profile.Description, sample.Condition),
			IsPrimary: true,
		})
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates
}

// pickTemplate draws one unused template for mood uniformly at random and
// marks it used. Returns false when the mood has no unused templates.
func (s *PromptService) pickTemplate(mood string, used map[string]bool) (string, bool) {
	templates := s.cat.Templates[mood]
	available := make([]string, 0, len(templates))
	for _, t := range templates {
		if !used[t] {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		return "", false
	}
	tpl := available[s.rng.Intn(len(available))]
	used[tpl] = true
	return tpl, true
}

func renderTemplate(tpl, weatherDesc string, condition domain.Condition) string {
	out := strings.ReplaceAll(tpl, "{weather_desc}", weatherDesc)
	out = strings.ReplaceAll(out, "{weather_condition}",
		strings.ReplaceAll(string(condition), "_", " "))
	return out
}
