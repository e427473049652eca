package onboarding

import (
	"fmt"

	"vittasaathi/internal/domain/entities"
)

type promptKey string

const (
	promptLocaleMenu    promptKey = "locale_menu"
	promptLocaleInvalid promptKey = "locale_invalid"
	promptAskName       promptKey = "ask_name"
	promptAskOccupation promptKey = "ask_occupation"
	promptAskIncome     promptKey = "ask_income"
	promptIncomeInvalid promptKey = "income_invalid"
	promptAskGoal       promptKey = "ask_goal"
	promptAskTarget     promptKey = "ask_target"
	promptTargetInvalid promptKey = "target_invalid"
	promptAskTimeline   promptKey = "ask_timeline"
)

const localeMenuText = "Welcome to VittaSaathi! 🙏 Choose your language:\n1. English\n2. हिंदी\n3. தமிழ்\n4. తెలుగు\n5. ಕನ್ನಡ\n6. മലയാളം\n\nReply with a number or the language name."

// Prompt tables. English is complete; other locales cover what has been
// translated so far and fall back to English for the rest.
var promptTexts = map[entities.Locale]map[promptKey]string{
	entities.LocaleEnglish: {
		promptLocaleMenu:    localeMenuText,
		promptLocaleInvalid: "Sorry, I didn't catch that. " + localeMenuText,
		promptAskName:       "Great! What should I call you?",
		promptAskOccupation: "Nice to meet you, %s! What do you do for work?",
		promptAskIncome:     "How much do you earn in a month? (e.g. 15000 or 15k)",
		promptIncomeInvalid: "Please send your monthly income as a number, like 15000 or 15k.",
		promptAskGoal:       "What are you saving for? (e.g. bike, emergency fund, wedding)",
		promptAskTarget:     "How much do you need for your %s? (e.g. 50000 or 1 lakh)",
		promptTargetInvalid: "Please send the target amount as a number, like 50000 or 1 lakh.",
		promptAskTimeline:   "By when do you want to reach it? (e.g. 10 months or 2 years)",
	},
	entities.LocaleHindi: {
		promptLocaleMenu:    localeMenuText,
		promptLocaleInvalid: "माफ़ कीजिए, समझ नहीं आया। " + localeMenuText,
		promptAskName:       "बढ़िया! आपका नाम क्या है?",
		promptAskOccupation: "नमस्ते %s! आप क्या काम करते हैं?",
		promptAskIncome:     "आप महीने में कितना कमाते हैं? (जैसे 15000 या 15k)",
		promptIncomeInvalid: "कृपया मासिक आय संख्या में भेजें, जैसे 15000 या 15k।",
		promptAskGoal:       "आप किसके लिए बचत कर रहे हैं? (जैसे बाइक, शादी)",
		promptAskTimeline:   "कब तक पूरा करना है? (जैसे 10 महीने या 2 साल)",
	},
}

var completionTexts = map[entities.Locale]string{
	entities.LocaleEnglish: "You're all set, %s! 🎯\nGoal: %s (₹%d in %d months)\nSave ₹%d/day (₹%d/month) and keep daily spending under ₹%d.\n\nJust text me your expenses and income as they happen!",
	entities.LocaleHindi:   "सब तैयार है, %s! 🎯\nलक्ष्य: %s (₹%d, %d महीने में)\nरोज़ ₹%d बचाएं (₹%d/महीना) और रोज़ का खर्च ₹%d से कम रखें।\n\nअपने खर्च और कमाई मुझे मैसेज करते रहें!",
}

func prompt(key promptKey, locale entities.Locale) string {
	if text, ok := promptTexts[locale][key]; ok {
		return text
	}
	return promptTexts[entities.LocaleEnglish][key]
}

func render(key promptKey, locale entities.Locale, args ...any) string {
	return fmt.Sprintf(prompt(key, locale), args...)
}

func renderCompletion(locale entities.Locale, p *entities.Profile) string {
	text, ok := completionTexts[locale]
	if !ok {
		text = completionTexts[entities.LocaleEnglish]
	}
	return fmt.Sprintf(text, p.DisplayName, p.GoalName, p.TargetAmount, p.TimelineMonths,
		p.DailyTarget, p.MonthlyTarget, p.DailyBudget)
}
