// Package validation checks raw user input for expenses, income and
// budgets and turns it into normalized records.
//
// Rules run in stages. Every stage checks all fields in the order date,
// category or source, amount, description before the next stage starts,
// so the reported error is always the first failing rule of the earliest
// failing stage.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

const (
	MaxDescriptionLength = 500
	maxAmount            = 1_000_000
	maxBudgetLimit       = 10_000_000
)

var minAmount = decimal.RequireFromString("0.01")

// Error is a rule violation for a single field. The reason is meant to be
// shown to users verbatim.
type Error struct {
	Field  string
	Reason string
}

func (e Error) Error() string {
	return e.Reason
}

// RangePolicy decides what happens with date ranges where the start lies
// after the end.
type RangePolicy string

const (
	// RangePolicyError rejects inverted ranges.
	RangePolicyError RangePolicy = "error"

	// RangePolicyEmpty accepts inverted ranges. They match no records.
	RangePolicyEmpty RangePolicy = "empty"
)

// Mode distinguishes record creation from edits.
type Mode int

const (
	Create Mode = iota
	Update
)

// Options configure a Validator.
type Options struct {
	RejectFutureDates bool
	RangePolicy       RangePolicy
	Now               func() time.Time
}

// Validator validates raw input. The zero value accepts future dates,
// rejects inverted date ranges and uses the current time.
type Validator struct {
	opts Options
}

// New returns a Validator.
func New(opts Options) Validator {
	return Validator{opts: opts}
}

func (v Validator) today() types.Date {
	if v.opts.Now == nil {
		return types.DateOf(time.Now())
	}
	return types.DateOf(v.opts.Now())
}

// ExpenseInput is an expense as entered by a user.
type ExpenseInput struct {
	Date        string `json:"date" example:"2025-10-01"`
	Category    string `json:"category" example:"Food & Dining"`
	Amount      string `json:"amount" example:"12.50"`
	Description string `json:"description" example:"Coffee, pastry"`
}

// IncomeInput is an income record as entered by a user.
type IncomeInput struct {
	Date        string `json:"date" example:"2025-10-01"`
	Source      string `json:"source" example:"Salary"`
	Amount      string `json:"amount" example:"2500"`
	Description string `json:"description" example:"October paycheck"`
}

// BudgetInput is a monthly limit as entered by a user.
type BudgetInput struct {
	Category     string `json:"category" example:"Transportation"`
	MonthlyLimit string `json:"monthlyLimit" example:"310"`
}

// record is the intermediate state of a record while its rules are
// evaluated. Labels and the description are kept as entered: labels must
// match exactly and the description length counts surrounding whitespace.
type record struct {
	date        string
	label       string
	amount      string
	description string

	parsedDate   types.Date
	parsedAmount decimal.Decimal
}

type rule func(v Validator, r *record) *Error

// Expense validates an expense. The same rules apply on create and update.
func (v Validator) Expense(in ExpenseInput) (models.Expense, error) {
	r := record{
		date:        strings.TrimSpace(in.Date),
		label:       in.Category,
		amount:      strings.TrimSpace(in.Amount),
		description: in.Description,
	}

	stages := [][]rule{
		{dateRequired, required("category", "Category is required", labelOf), amountRequired},
		{dateFormat, amountFormat},
		{futureDate, amountRange},
		{descriptionLength},
		{enum("category", categoryMember)},
	}

	if err := v.run(stages, &r); err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		Date:        r.parsedDate,
		Category:    types.Category(r.label),
		Amount:      r.parsedAmount,
		Description: strings.TrimSpace(r.description),
	}, nil
}

// Income validates an income record. On creation, an empty date defaults
// to today. On update, the date is required like every other field.
func (v Validator) Income(in IncomeInput, mode Mode) (models.Income, error) {
	r := record{
		date:        strings.TrimSpace(in.Date),
		label:       in.Source,
		amount:      strings.TrimSpace(in.Amount),
		description: in.Description,
	}

	if r.date == "" && mode == Create {
		r.date = v.today().String()
	}

	stages := [][]rule{
		{dateRequired, required("source", "Source is required", labelOf), amountRequired},
		{dateFormat, amountFormat},
		{futureDate, amountRange},
		{descriptionLength},
		{enum("source", sourceMember)},
	}

	if err := v.run(stages, &r); err != nil {
		return models.Income{}, err
	}

	return models.Income{
		Date:        r.parsedDate,
		Source:      types.Source(r.label),
		Amount:      r.parsedAmount,
		Description: strings.TrimSpace(r.description),
	}, nil
}

// Budget validates a monthly limit for a category.
func (v Validator) Budget(in BudgetInput) (types.Category, decimal.Decimal, error) {
	r := record{
		label:  in.Category,
		amount: strings.TrimSpace(in.MonthlyLimit),
	}

	stages := [][]rule{
		{required("category", "Category is required", labelOf), required("monthlyLimit", "Monthly limit is required", amountOf)},
		{limitFormat},
		{limitRange},
		{enum("category", categoryMember)},
	}

	if err := v.run(stages, &r); err != nil {
		return "", decimal.Zero, err
	}

	return types.Category(r.label), r.parsedAmount, nil
}

// Category validates a category name on its own, e.g. from a URL.
func (v Validator) Category(s string) (types.Category, error) {
	r := record{label: s}
	if err := v.run([][]rule{{enum("category", categoryMember)}}, &r); err != nil {
		return "", err
	}
	return types.Category(s), nil
}

// Source validates an income source name on its own.
func (v Validator) Source(s string) (types.Source, error) {
	r := record{label: s}
	if err := v.run([][]rule{{enum("source", sourceMember)}}, &r); err != nil {
		return "", err
	}
	return types.Source(s), nil
}

// DateRange validates an optional date range filter. Both bounds are
// optional. A start after the end is an error unless the validator uses
// RangePolicyEmpty, in which case the inverted range is returned and
// matches nothing.
func (v Validator) DateRange(from, until string) (types.DateRange, error) {
	var r types.DateRange

	from = strings.TrimSpace(from)
	until = strings.TrimSpace(until)

	if from != "" {
		d, err := types.ParseDate(from)
		if err != nil {
			return types.DateRange{}, Error{Field: "from", Reason: errInvalidDateFormat}
		}
		r.From = d
	}

	if until != "" {
		d, err := types.ParseDate(until)
		if err != nil {
			return types.DateRange{}, Error{Field: "until", Reason: errInvalidDateFormat}
		}
		r.Until = d
	}

	if r.Empty() && v.opts.RangePolicy != RangePolicyEmpty {
		return types.DateRange{}, Error{Field: "from", Reason: "Start date must be before or equal to end date"}
	}

	return r, nil
}

func (v Validator) run(stages [][]rule, r *record) error {
	for _, stage := range stages {
		for _, check := range stage {
			if err := check(v, r); err != nil {
				return *err
			}
		}
	}
	return nil
}

const errInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD (e.g., 2025-10-01)"

func required(field, reason string, value func(*record) string) rule {
	return func(_ Validator, r *record) *Error {
		if value(r) == "" {
			return &Error{Field: field, Reason: reason}
		}
		return nil
	}
}

func dateOf(r *record) string   { return r.date }
func labelOf(r *record) string  { return r.label }
func amountOf(r *record) string { return r.amount }

var (
	dateRequired   = required("date", "Date is required", dateOf)
	amountRequired = required("amount", "Amount is required", amountOf)
)

func dateFormat(_ Validator, r *record) *Error {
	d, err := types.ParseDate(r.date)
	if err != nil {
		return &Error{Field: "date", Reason: errInvalidDateFormat}
	}

	r.parsedDate = d
	return nil
}

func parseAmount(field, reason string, r *record) *Error {
	a, err := decimal.NewFromString(r.amount)
	if err != nil {
		return &Error{Field: field, Reason: reason}
	}

	r.parsedAmount = a
	return nil
}

func amountFormat(_ Validator, r *record) *Error {
	return parseAmount("amount", "Amount must be a valid number", r)
}

func limitFormat(_ Validator, r *record) *Error {
	return parseAmount("monthlyLimit", "Monthly limit must be a valid number", r)
}

func futureDate(v Validator, r *record) *Error {
	if v.opts.RejectFutureDates && r.parsedDate.After(v.today()) {
		return &Error{Field: "date", Reason: "Date cannot be in the future"}
	}
	return nil
}

func amountRange(_ Validator, r *record) *Error {
	a := r.parsedAmount

	if !a.IsPositive() {
		return &Error{Field: "amount", Reason: "Amount must be greater than 0"}
	}

	if a.LessThan(minAmount) {
		return &Error{Field: "amount", Reason: "Amount must be at least 0.01"}
	}

	if a.GreaterThanOrEqual(decimal.NewFromInt(maxAmount)) {
		return &Error{Field: "amount", Reason: "Amount must be less than 1,000,000"}
	}

	if !a.Equal(a.Round(2)) {
		return &Error{Field: "amount", Reason: "Amount can have at most 2 decimal places"}
	}

	r.parsedAmount = a.Round(2)
	return nil
}

func limitRange(_ Validator, r *record) *Error {
	a := r.parsedAmount

	if !a.IsPositive() {
		return &Error{Field: "monthlyLimit", Reason: "Budget limit must be greater than 0"}
	}

	if a.GreaterThanOrEqual(decimal.NewFromInt(maxBudgetLimit)) {
		return &Error{Field: "monthlyLimit", Reason: "Budget limit must be less than 10,000,000"}
	}

	if !a.Equal(a.Round(2)) {
		return &Error{Field: "monthlyLimit", Reason: "Budget limit can have at most 2 decimal places"}
	}

	r.parsedAmount = a.Round(2)
	return nil
}

func descriptionLength(_ Validator, r *record) *Error {
	if utf8.RuneCountInString(r.description) > MaxDescriptionLength {
		return &Error{Field: "description", Reason: fmt.Sprintf("Description too long. Maximum %d characters.", MaxDescriptionLength)}
	}
	return nil
}

func categoryMember(s string) (bool, string) {
	_, ok := types.ParseCategory(s)
	return ok, joinLabels(types.Categories())
}

func sourceMember(s string) (bool, string) {
	_, ok := types.ParseSource(s)
	return ok, joinLabels(types.Sources())
}

func joinLabels[T ~string](labels []T) string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

func enum(field string, member func(string) (bool, string)) rule {
	return func(_ Validator, r *record) *Error {
		ok, valid := member(r.label)
		if !ok {
			return &Error{Field: field, Reason: fmt.Sprintf("Invalid %s. Must be one of: %s", field, valid)}
		}
		return nil
	}
}
