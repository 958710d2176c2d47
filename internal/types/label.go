package types

import (
	"golang.org/x/exp/slices"
)

// Category is the label of an expense. Only the members of the closed
// set below are valid.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryOther          Category = "Other"
)

const (
	defaultCategoryColor     = "#BDC3C7"
	defaultIncomeSourceColor = "#94A3B8"
)

// Source is the label of an income record.
type Source string

const (
	SourceSalary     Source = "Salary"
	SourceFreelance  Source = "Freelance"
	SourceBusiness   Source = "Business"
	SourceInvestment Source = "Investment"
	SourceGift       Source = "Gift"
	SourceRefund     Source = "Refund"
	SourceBonus      Source = "Bonus"
	SourceOther      Source = "Other"
)

type label[T ~string] struct {
	Name  T
	Color string
}

var categories = [...]label[Category]{
	{CategoryFoodDining, "#FF6B6B"},
	{CategoryTransportation, "#4ECDC4"},
	{CategoryShopping, "#45B7D1"},
	{CategoryEntertainment, "#FFA07A"},
	{CategoryBillsUtilities, "#98D8C8"},
	{CategoryHealthcare, "#F7DC6F"},
	{CategoryEducation, "#A78BFA"},
	{CategoryOther, defaultCategoryColor},
}

var sources = [...]label[Source]{
	{SourceSalary, "#10B981"},
	{SourceFreelance, "#3B82F6"},
	{SourceBusiness, "#8B5CF6"},
	{SourceInvestment, "#F59E0B"},
	{SourceGift, "#EC4899"},
	{SourceRefund, "#6366F1"},
	{SourceBonus, "#14B8A6"},
	{SourceOther, defaultIncomeSourceColor},
}

func names[T ~string](labels []label[T]) []T {
	out := make([]T, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.Name)
	}
	return out
}

// Categories returns all expense categories in display order.
// The returned slice is a copy and can be modified by the caller.
func Categories() []Category {
	return names(categories[:])
}

// Sources returns all income sources in display order.
func Sources() []Source {
	return names(sources[:])
}

// ParseCategory returns the category with exactly the given name.
// Matching is case sensitive.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, slices.Contains(Categories(), c)
}

// ParseSource returns the income source with exactly the given name.
func ParseSource(s string) (Source, bool) {
	src := Source(s)
	return src, slices.Contains(Sources(), src)
}

// Color returns the chart color for the category.
func (c Category) Color() string {
	for _, l := range categories {
		if l.Name == c {
			return l.Color
		}
	}
	return defaultCategoryColor
}

// Color returns the chart color for the income source.
func (s Source) Color() string {
	for _, l := range sources {
		if l.Name == s {
			return l.Color
		}
	}
	return defaultIncomeSourceColor
}
