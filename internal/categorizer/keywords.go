package categorizer

import (
	"strings"

	"spendwise-backend/internal/models"
)

type keywordRule struct {
	category string
	keywords []string
}

// Order matters: the first category with a matching keyword wins.
var keywordRules = []keywordRule{
	{models.CategoryFood, []string{
		"swiggy", "zomato", "biryani", "food", "restaurant", "cafe", "bakery",
		"dinner", "lunch", "breakfast", "pizza", "burger", "hotel", "dhaba",
		"tea", "coffee", "snack", "juice", "meal", "eat", "dine",
	}},
	{models.CategoryTravel, []string{
		"uber", "ola", "bus", "train", "petrol", "fuel", "flight", "cab",
		"metro", "auto", "rickshaw", "toll", "parking", "rapido",
	}},
	{models.CategoryRent, []string{"rent", "house", "pg", "lease", "apartment", "hostel", "room"}},
	{models.CategoryBills, []string{
		"electricity", "water", "bill", "recharge", "wifi", "internet",
		"gas", "mobile", "phone", "broadband", "dth", "subscription",
	}},
	{models.CategoryEntertainment, []string{
		"netflix", "movie", "spotify", "prime", "gaming", "concert",
		"hotstar", "youtube", "zee5", "theatre", "game", "cricket",
	}},
	{models.CategoryHealth, []string{
		"doctor", "medicine", "hospital", "pharmacy", "clinic",
		"medical", "health", "chemist", "tablet", "injection",
	}},
	{models.CategoryShopping, []string{
		"amazon", "flipkart", "mall", "clothes", "shoes", "myntra",
		"meesho", "ajio", "market", "shop", "purchase", "buy",
	}},
}

// KeywordCategory assigns a category by lower-cased substring match against a
// fixed keyword table. Descriptions with no match are Other.
func KeywordCategory(description string) string {
	text := strings.ToLower(description)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}
