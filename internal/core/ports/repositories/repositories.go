package repositories

// RepositoryProvider bundles every repository the service layer needs,
// so wiring stays in one place.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryWithTx
	DashboardRepo   DashboardRepositoryWithTx
	GoalRepo        GoalRepository
	BudgetRepo      BudgetRepository
	CategoryRepo    CategoryRepository
	UserRepo        UserRepositoryFacade
}
