package entities

import "time"

// SessionContext is the short-lived per-user conversational memory.
type SessionContext struct {
	Locale               Locale    `json:"locale" bson:"locale"`
	LastIntent           Intent    `json:"last_intent" bson:"last_intent"`
	LastEntities         Entities  `json:"last_entities" bson:"last_entities"`
	LastResponse         string    `json:"last_response" bson:"last_response"`
	AwaitingConfirmation bool      `json:"awaiting_confirmation" bson:"awaiting_confirmation"`
	AwaitingLocale       bool      `json:"awaiting_locale,omitempty" bson:"awaiting_locale,omitempty"`
	OTP                  string    `json:"otp,omitempty" bson:"otp,omitempty"`
	OTPExpiry            time.Time `json:"otp_expiry,omitempty" bson:"otp_expiry,omitempty"`
}

// Profile accumulates the onboarding answers plus the derived budget fields
// frozen at completion.
type Profile struct {
	Locale         Locale `json:"locale" bson:"locale"`
	DisplayName    string `json:"display_name" bson:"display_name"`
	Occupation     string `json:"occupation" bson:"occupation"`
	MonthlyIncome  int    `json:"monthly_income" bson:"monthly_income"`
	GoalName       string `json:"goal_name" bson:"goal_name"`
	TargetAmount   int    `json:"target_amount" bson:"target_amount"`
	TimelineMonths int    `json:"timeline_months" bson:"timeline_months"`
	DailyTarget    int    `json:"daily_target" bson:"daily_target"`
	MonthlyTarget  int    `json:"monthly_target" bson:"monthly_target"`
	DailyBudget    int    `json:"daily_budget" bson:"daily_budget"`
}

// OnboardingState tracks the profile-collection step sequence.
type OnboardingState struct {
	Step      int       `json:"step" bson:"step"`
	Completed bool      `json:"completed" bson:"completed"`
	StartDate time.Time `json:"start_date,omitempty" bson:"start_date,omitempty"`
	Profile   Profile   `json:"profile" bson:"profile"`
}

// UserContext is the persisted per-conversation record.
type UserContext struct {
	ConversationID string          `json:"conversation_id" bson:"conversation_id"`
	Session        SessionContext  `json:"session" bson:"session"`
	Onboarding     OnboardingState `json:"onboarding" bson:"onboarding"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}
