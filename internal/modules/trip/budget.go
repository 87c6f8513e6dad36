package trip

// Budget tiers accepted in a Request.
const (
	BudgetFriendly = 1
	BudgetMidRange = 2
	BudgetLuxury   = 3
)

// DescribeBudget maps a budget tier to the descriptor embedded in prompts.
// Out-of-range values fall back to "Any Budget".
func DescribeBudget(level int) string {
	switch level {
	case BudgetFriendly:
		return "Budget-Friendly"
	case BudgetMidRange:
		return "Mid-Range"
	case BudgetLuxury:
		return "Luxury"
	default:
		return "Any Budget"
	}
}
