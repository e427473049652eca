package services

import (
	"fmt"
	"strings"

	"vittasaathi/internal/domain/entities"
)

type replyKey string

const (
	replyGreeting        replyKey = "greeting"
	replyHelp            replyKey = "help"
	replyOtp             replyKey = "otp"
	replyExpenseLogged   replyKey = "expense_logged"
	replyOverBudget      replyKey = "over_budget"
	replyIncomeLogged    replyKey = "income_logged"
	replyBothLogged      replyKey = "both_logged"
	replyBalance         replyKey = "balance"
	replyReport          replyKey = "report"
	replyReportDetail    replyKey = "report_detail"
	replyReportDeclined  replyKey = "report_declined"
	replyBudgetProgress  replyKey = "budget_progress"
	replyInvestment      replyKey = "investment"
	replyMarket          replyKey = "market"
	replyAmountAmbiguous replyKey = "amount_ambiguous"
	replyUnknown         replyKey = "unknown"
	replyLocaleMenu      replyKey = "locale_menu"
	replyLocaleUpdated   replyKey = "locale_updated"
	replyLocaleKept      replyKey = "locale_kept"
	replyNoGoal          replyKey = "no_goal"
	replyError           replyKey = "error"
)

// Reply tables per locale. English is the complete set; missing keys in
// other locales fall back to English.
var replyTexts = map[entities.Locale]map[replyKey]string{
	entities.LocaleEnglish: {
		replyGreeting:        "Hi %s! 👋 Text me your expenses and income as they happen, or ask for your balance, report, or goal progress.",
		replyHelp:            "Here's what I can do:\n• Log money: \"spent 200 on tea\", \"earned 500\"\n• \"balance\" - today and this month\n• \"report\" - monthly summary\n• \"goal\" - savings progress\n• \"invest\" - saving tips\n• \"language\" - change language",
		replyOtp:             "Your verification code is %s. It expires in 5 minutes. Don't share it with anyone.",
		replyExpenseLogged:   "Got it! ₹%d on %s. 📝\nToday's spending: ₹%d. You have ₹%d left for today.",
		replyOverBudget:      "Noted, ₹%d on %s. ⚠️ Today's spending is ₹%d, which is ₹%d over your daily budget.",
		replyIncomeLogged:    "Nice! ₹%d earned (%s). 💰 Keep it up!",
		replyBothLogged:      "Logged both: ₹%d earned (%s) and ₹%d spent on %s.\nToday's net: ₹%d.",
		replyBalance:         "Today: earned ₹%d, spent ₹%d.\nThis month: earned ₹%d, spent ₹%d.\nNet this month: ₹%d.",
		replyReport:          "This month: earned ₹%d, spent ₹%d (net ₹%d).\nTop spending:\n%s\nWant the detailed breakdown? (yes/no)",
		replyReportDetail:    "Full breakdown for this month:\n%s\nNet savings: ₹%d.",
		replyReportDeclined:  "No problem! Ask for a report anytime.",
		replyBudgetProgress:  "Goal: %s (₹%d)\n%s %d%%\nSaved ₹%d so far. Keep saving ₹%d/day to stay on track!",
		replyInvestment:      "A good start: put aside a fixed amount every day, even ₹50. Once you have an emergency fund of 3 months' expenses, look at a recurring deposit or an index fund SIP. Avoid schemes promising quick doubling.",
		replyMarket:          "I don't track live prices, but for long-term savings the day-to-day market doesn't matter much. A steady SIP beats timing the market.",
		replyAmountAmbiguous: "I see ₹%d. Did you spend it or earn it? Try \"spent %d\" or \"earned %d\".",
		replyUnknown:         "Sorry, I didn't get that. 🤔 Send \"help\" to see what I can do.",
		replyLocaleMenu:      "Choose your language:\n1. English\n2. हिंदी\n3. தமிழ்\n4. తెలుగు\n5. ಕನ್ನಡ\n6. മലയാളം",
		replyLocaleUpdated:   "Done! Language updated.",
		replyLocaleKept:      "Keeping your current language.",
		replyNoGoal:          "You haven't set a savings goal yet. Send \"restart\" to set one up.",
		replyError:           "Something went wrong on my side. Please try that again in a moment.",
	},
	entities.LocaleHindi: {
		replyGreeting:      "नमस्ते %s! 👋 अपने खर्च और कमाई मुझे मैसेज करें, या बैलेंस, रिपोर्ट या लक्ष्य पूछें।",
		replyExpenseLogged: "ठीक है! %s पर ₹%d। 📝\nआज का खर्च: ₹%d। आज के लिए ₹%d बचे हैं।",
		replyIncomeLogged:  "बढ़िया! ₹%d की कमाई (%s)। 💰",
		replyUnknown:       "माफ़ कीजिए, समझ नहीं आया। 🤔 \"help\" भेजें।",
		replyLocaleUpdated: "हो गया! अब से हिंदी में जवाब दूंगा।",
	},
}

func reply(key replyKey, locale entities.Locale) string {
	if text, ok := replyTexts[locale][key]; ok {
		return text
	}
	return replyTexts[entities.LocaleEnglish][key]
}

func replyf(key replyKey, locale entities.Locale, args ...any) string {
	return fmt.Sprintf(reply(key, locale), args...)
}

// hindi flips the arg order for expense confirmations, where the category
// reads before the amount.
func expenseLoggedReply(locale entities.Locale, amount int, category string, spentToday, remaining int) string {
	if locale == entities.LocaleHindi {
		if text, ok := replyTexts[entities.LocaleHindi][replyExpenseLogged]; ok {
			return fmt.Sprintf(text, category, amount, spentToday, remaining)
		}
	}
	return replyf(replyExpenseLogged, locale, amount, category, spentToday, remaining)
}

func incomeLoggedReply(locale entities.Locale, amount int, category string) string {
	return replyf(replyIncomeLogged, locale, amount, category)
}

// progressBar renders a ten-segment bar for a 0-100 percentage.
func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled)
}

// formatBreakdown renders per-category totals, largest first.
func formatBreakdown(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return "• nothing logged yet"
	}

	type row struct {
		category string
		total    int
	}
	rows := make([]row, 0, len(breakdown))
	for category, total := range breakdown {
		rows = append(rows, row{category, total})
	}
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].total > rows[j-1].total; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %s: ₹%d", r.category, r.total)
	}
	return b.String()
}
