package entities

// Intent is the classified purpose of one inbound message.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentHelp             Intent = "help"
	IntentOtpRequest       Intent = "otp_request"
	IntentLogExpense       Intent = "log_expense"
	IntentLogIncome        Intent = "log_income"
	IntentCheckBalance     Intent = "check_balance"
	IntentViewReport       Intent = "view_report"
	IntentBudgetQuery      Intent = "budget_query"
	IntentInvestmentAdvice Intent = "investment_advice"
	IntentMarketUpdate     Intent = "market_update"
	IntentConfirmation     Intent = "confirmation"
	IntentFallback         Intent = "fallback"
	IntentUnknown          Intent = "unknown"
)

// Polarity is the yes/no direction of a confirmation phrase.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNone     Polarity = ""
)

// Entities carries the slots extracted from one utterance. Absent numeric
// slots are nil pointers; absent strings are empty. When a single message
// carries both an income and an expense leg, the income values live in
// Amount/Category and the expense leg in ExpenseAmount/ExpenseCategory.
type Entities struct {
	Amount          *int     `json:"amount,omitempty" bson:"amount,omitempty"`
	Category        string   `json:"category,omitempty" bson:"category,omitempty"`
	Confirmation    Polarity `json:"confirmation,omitempty" bson:"confirmation,omitempty"`
	ExpenseAmount   *int     `json:"expense_amount,omitempty" bson:"expense_amount,omitempty"`
	ExpenseCategory string   `json:"expense_category,omitempty" bson:"expense_category,omitempty"`
	Description     string   `json:"description,omitempty" bson:"description,omitempty"`
}
