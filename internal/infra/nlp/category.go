package nlp

import "strings"

// Direction selects which category table applies to an utterance.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

type categoryRule struct {
	name     string
	keywords []string
}

// Table order is a tie-break: earlier entries shadow later ones when a text
// matches several categories.
var expenseCategories = []categoryRule{
	{"food", []string{"food", "खाना", "சாப்பாடு", "భోజనం", "tea", "chai", "lunch", "dinner", "breakfast", "snack", "biryani", "pizza"}},
	{"transport", []string{"auto", "bus", "uber", "ola", "petrol", "diesel", "यात्रा", "பயணம்", "train", "metro"}},
	{"bills", []string{"bill", "recharge", "electricity", "बिजली", "phone", "internet", "rent", "किराया"}},
	{"shopping", []string{"amazon", "flipkart", "clothes", "kapde", "shopping", "mall"}},
	{"medical", []string{"medicine", "doctor", "hospital", "दवाई", "மருந்து"}},
	{"entertainment", []string{"movie", "netflix", "game", "मनोरंजन"}},
}

var incomeCategories = []categoryRule{
	{"salary", []string{"salary", "तनख्वाह", "சம்பளம்", "జీతం"}},
	{"gig", []string{"delivery", "uber", "ola", "swiggy", "zomato", "dunzo"}},
	{"business", []string{"business", "shop", "दुकान", "கடை", "sale"}},
	{"freelance", []string{"freelance", "project", "client"}},
	{"other", []string{"gift", "refund", "bonus", "cashback"}},
}

// ExtractCategory matches text against the ordered keyword table for the
// given direction. The first category with a substring hit wins; "other"
// when nothing matches.
func ExtractCategory(text string, direction Direction) string {
	lower := strings.ToLower(text)

	table := expenseCategories
	if direction == DirectionIncome {
		table = incomeCategories
	}

	for _, rule := range table {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.name
			}
		}
	}
	return "other"
}
