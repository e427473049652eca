package onboarding

import (
	"strconv"
	"strings"
	"time"

	"vittasaathi/internal/domain/entities"
	"vittasaathi/internal/infra/nlp"
)

// Step values of the profile-collection sequence. Progression is strictly
// monotonic; a step only repeats when its answer fails to parse.
const (
	StepLocale        = 0
	StepName          = 1
	StepOccupation    = 2
	StepMonthlyIncome = 3
	StepGoalName      = 4
	StepTargetAmount  = 5
	StepTimeline      = 6
	StepComplete      = 7
)

// BareYearsMax bounds the bare-integer timeline heuristic: "5" reads as
// five years, "6" as six months.
const BareYearsMax = 5

// DefaultTimelineMonths applies when the timeline answer has no number.
const DefaultTimelineMonths = 12

var restartCommands = map[string]bool{
	"restart":    true,
	"start over": true,
	"reset":      true,
	"फिर से":     true,
}

var localeChoices = map[string]entities.Locale{
	"1": entities.LocaleEnglish, "english": entities.LocaleEnglish,
	"2": entities.LocaleHindi, "hindi": entities.LocaleHindi, "हिंदी": entities.LocaleHindi,
	"3": entities.LocaleTamil, "tamil": entities.LocaleTamil, "தமிழ்": entities.LocaleTamil,
	"4": entities.LocaleTelugu, "telugu": entities.LocaleTelugu, "తెలుగు": entities.LocaleTelugu,
	"5": entities.LocaleKannada, "kannada": entities.LocaleKannada, "ಕನ್ನಡ": entities.LocaleKannada,
	"6": entities.LocaleMalayalam, "malayalam": entities.LocaleMalayalam, "മലയാളം": entities.LocaleMalayalam,
}

// IsRestartCommand reports whether text is the explicit restart command,
// accepted in any state including a completed profile.
func IsRestartCommand(text string) bool {
	return restartCommands[strings.ToLower(strings.TrimSpace(text))]
}

// ParseLocaleChoice maps a language-menu answer to its locale. The dialog
// router reuses it for post-onboarding language changes.
func ParseLocaleChoice(text string) (entities.Locale, bool) {
	locale, ok := localeChoices[strings.ToLower(strings.TrimSpace(text))]
	return locale, ok
}

// Machine advances the onboarding sequence one answer at a time. All the
// derived budget fields are computed exactly once, at completion.
type Machine struct {
	minimumBudget int
	now           func() time.Time
}

func NewMachine(minimumBudget int) *Machine {
	return &Machine{minimumBudget: minimumBudget, now: time.Now}
}

// Begin returns the fresh state and the opening prompt.
func (m *Machine) Begin() (entities.OnboardingState, string) {
	return entities.OnboardingState{Step: StepLocale}, prompt(promptLocaleMenu, entities.DefaultLocale)
}

// Advance consumes one answer and returns the next state plus the reply to
// send. A restart command or a corrupt step resets to the beginning; a
// failed parse repeats the current step.
func (m *Machine) Advance(state entities.OnboardingState, text string) (entities.OnboardingState, string) {
	trimmed := strings.TrimSpace(text)
	normalized := strings.ToLower(trimmed)
	locale := state.Profile.Locale
	if !locale.Valid() {
		locale = entities.DefaultLocale
	}

	if IsRestartCommand(normalized) {
		return m.Begin()
	}
	if state.Step < StepLocale || state.Step >= StepComplete {
		return m.Begin()
	}

	switch state.Step {
	case StepLocale:
		chosen, ok := localeChoices[normalized]
		if !ok {
			return state, prompt(promptLocaleInvalid, locale)
		}
		state.Profile.Locale = chosen
		state.Step = StepName
		return state, prompt(promptAskName, chosen)

	case StepName:
		if trimmed == "" {
			return state, prompt(promptAskName, locale)
		}
		state.Profile.DisplayName = titleCase(trimmed)
		state.Step = StepOccupation
		return state, render(promptAskOccupation, locale, state.Profile.DisplayName)

	case StepOccupation:
		if trimmed == "" {
			return state, render(promptAskOccupation, locale, state.Profile.DisplayName)
		}
		state.Profile.Occupation = titleCase(trimmed)
		state.Step = StepMonthlyIncome
		return state, prompt(promptAskIncome, locale)

	case StepMonthlyIncome:
		amount, ok := nlp.ExtractAmount(trimmed)
		if !ok || amount <= 0 {
			return state, prompt(promptIncomeInvalid, locale)
		}
		state.Profile.MonthlyIncome = amount
		state.Step = StepGoalName
		return state, prompt(promptAskGoal, locale)

	case StepGoalName:
		if trimmed == "" {
			return state, prompt(promptAskGoal, locale)
		}
		state.Profile.GoalName = trimmed
		state.Step = StepTargetAmount
		return state, render(promptAskTarget, locale, state.Profile.GoalName)

	case StepTargetAmount:
		amount, ok := nlp.ExtractAmount(trimmed)
		if !ok || amount <= 0 {
			return state, prompt(promptTargetInvalid, locale)
		}
		state.Profile.TargetAmount = amount
		state.Step = StepTimeline
		return state, prompt(promptAskTimeline, locale)

	case StepTimeline:
		state.Profile.TimelineMonths = parseTimeline(normalized)
		return m.complete(state, locale)
	}

	return m.Begin()
}

// complete freezes the derived budget fields and marks the sequence done.
func (m *Machine) complete(state entities.OnboardingState, locale entities.Locale) (entities.OnboardingState, string) {
	p := &state.Profile

	days := p.TimelineMonths * 30
	p.DailyTarget = p.TargetAmount / days
	p.MonthlyTarget = p.TargetAmount / p.TimelineMonths

	dailyBudget := p.MonthlyIncome/30 - p.DailyTarget
	if dailyBudget < m.minimumBudget {
		dailyBudget = m.minimumBudget
	}
	p.DailyBudget = dailyBudget

	state.Step = StepComplete
	state.Completed = true
	state.StartDate = m.now()

	return state, renderCompletion(locale, p)
}

// parseTimeline reads the goal horizon in months. Explicit units win; a bare
// integer up to BareYearsMax reads as years, above that as months.
func parseTimeline(normalized string) int {
	n, ok := firstInteger(normalized)
	if !ok || n <= 0 {
		return DefaultTimelineMonths
	}
	switch {
	case strings.Contains(normalized, "month") || strings.Contains(normalized, "महीन"):
		return n
	case strings.Contains(normalized, "year") || strings.Contains(normalized, "साल"):
		return n * 12
	case n <= BareYearsMax:
		return n * 12
	default:
		return n
	}
}

func firstInteger(text string) (int, bool) {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(text[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(text[start:])
		return n, err == nil
	}
	return 0, false
}

// titleCase capitalizes each space-separated word. strings.Title is
// deprecated and this input is user-typed names, not prose.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
