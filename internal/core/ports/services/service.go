package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Dashboard    DashboardSvcFacade
	Transaction  TransactionSvcFacade
	Sweeper      InstallmentSweeperSvc
	Notification NotificationSvcFacade
	Goal         GoalSvcFacade
	Budget       BudgetSvcFacade
	Category     CategorySvcFacade
	Auth         AuthSvcFacade
}
