package domain

// CategoryKind restricts which transaction types a category applies to.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
	CategoryBoth    CategoryKind = "both"
)

// Category is a user-defined label for classifying transactions and budgets.
type Category struct {
	CategoryID  string       `json:"categoryID"` // Primary Key (UUID)
	DashboardID string       `json:"dashboardID"`
	Name        string       `json:"name"`
	Kind        CategoryKind `json:"kind"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	AuditFields
}
