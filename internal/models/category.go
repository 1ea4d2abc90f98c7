package models

import "strings"

// Expense categories understood by the categorizer and the budget table
const (
	CategoryFood          = "Food"
	CategoryTravel        = "Travel"
	CategoryRent          = "Rent"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryShopping      = "Shopping"
	CategoryOther         = "Other"
)

// Categories lists every accepted label, Other last
var Categories = []string{
	CategoryFood,
	CategoryTravel,
	CategoryRent,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryShopping,
	CategoryOther,
}

// NormalizeCategory returns the canonical spelling of label, matching case-insensitively.
func NormalizeCategory(label string) (string, bool) {
	label = strings.TrimSpace(label)
	for _, c := range Categories {
		if strings.EqualFold(c, label) {
			return c, true
		}
	}
	return "", false
}
