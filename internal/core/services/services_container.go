package services

import (
	portsrepo "github.com/calema/findash_backend/internal/core/ports/repositories"
	portssvc "github.com/calema/findash_backend/internal/core/ports/services"
	"github.com/calema/findash_backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	clock := SystemClock{}

	dashboardSvc := NewDashboardService(repos.DashboardRepo)
	notificationSvc := NewNotificationService()

	return &portssvc.ServiceContainer{
		Dashboard:    dashboardSvc,
		Transaction:  NewTransactionService(repos.TransactionRepo, dashboardSvc, notificationSvc, clock),
		Sweeper:      NewSweepService(repos.TransactionRepo, notificationSvc, clock),
		Notification: notificationSvc,
		Goal:         NewGoalService(repos.GoalRepo, dashboardSvc, clock),
		Budget:       NewBudgetService(repos.BudgetRepo, dashboardSvc, clock),
		Category:     NewCategoryService(repos.CategoryRepo, dashboardSvc, clock),
		Auth:         NewAuthService(repos.UserRepo, cfg),
	}
}
