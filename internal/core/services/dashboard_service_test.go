package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/calema/findash_backend/internal/apperrors"
	"github.com/calema/findash_backend/internal/core/domain"
	"github.com/calema/findash_backend/internal/core/services"
	"github.com/calema/findash_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDashboardRepository
	service  *services.DashboardService

	userID      string
	dashboardID string
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockDashboardRepository)
	s.service = services.NewDashboardService(s.mockRepo)
	s.userID = uuid.NewString()
	s.dashboardID = uuid.NewString()
}

func (s *DashboardServiceTestSuite) membership(role domain.DashboardRole) *domain.UserDashboard {
	return &domain.UserDashboard{
		UserID:      s.userID,
		DashboardID: s.dashboardID,
		Role:        role,
		JoinedAt:    time.Now(),
	}
}

func (s *DashboardServiceTestSuite) TestCheckAccess_Member() {
	ctx := context.Background()
	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(s.membership(domain.RoleMember), nil).Once()

	role, err := s.service.CheckAccess(ctx, s.userID, s.dashboardID)

	s.Require().NoError(err)
	s.Equal(domain.RoleMember, role)
}

// A non-member gets a forbidden error, never an empty result set.
func (s *DashboardServiceTestSuite) TestCheckAccess_NonMemberForbidden() {
	ctx := context.Background()
	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(nil, apperrors.NewNotFoundError("no membership")).Once()

	role, err := s.service.CheckAccess(ctx, s.userID, s.dashboardID)

	s.Require().Error(err)
	s.Empty(role)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func (s *DashboardServiceTestSuite) TestAuthorizeUserAction_RoleRanking() {
	ctx := context.Background()

	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(s.membership(domain.RoleOwner), nil).Once()
	s.NoError(s.service.AuthorizeUserAction(ctx, s.userID, s.dashboardID, domain.RoleAdmin))

	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(s.membership(domain.RoleMember), nil).Once()
	err := s.service.AuthorizeUserAction(ctx, s.userID, s.dashboardID, domain.RoleAdmin)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *DashboardServiceTestSuite) TestCreateDashboard_CreatorBecomesOwner() {
	ctx := context.Background()
	req := dto.CreateDashboardRequest{Name: "household", Description: "shared expenses"}

	s.mockRepo.On("CreateDashboardWithOwner", ctx,
		mock.MatchedBy(func(d domain.Dashboard) bool {
			return d.Name == "household" && d.CreatedBy == s.userID
		}),
		mock.MatchedBy(func(m domain.UserDashboard) bool {
			return m.UserID == s.userID && m.Role == domain.RoleOwner
		}),
	).Return(nil).Once()

	dashboard, err := s.service.CreateDashboard(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(dashboard)
	s.Equal("household", dashboard.Name)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestCreateDashboard_AtomicWriteFailure() {
	ctx := context.Background()
	req := dto.CreateDashboardRequest{Name: "household", Description: "shared expenses"}

	s.mockRepo.On("CreateDashboardWithOwner", ctx, mock.AnythingOfType("domain.Dashboard"), mock.AnythingOfType("domain.UserDashboard")).
		Return(apperrors.NewAppError(500, "failed to register owner", nil)).Once()

	dashboard, err := s.service.CreateDashboard(ctx, req, s.userID)

	s.Require().Error(err)
	s.Nil(dashboard)
	// The dashboard insert is never issued on its own outside the atomic write.
	s.mockRepo.AssertNotCalled(s.T(), "SaveDashboard", mock.Anything, mock.Anything)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestAddUserToDashboard_RequiresAdmin() {
	ctx := context.Background()
	target := uuid.NewString()

	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(s.membership(domain.RoleMember), nil).Once()

	err := s.service.AddUserToDashboard(ctx, s.userID, target, s.dashboardID, domain.RoleMember)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockRepo.AssertNotCalled(s.T(), "AddUserToDashboard", mock.Anything, mock.Anything)
}

func (s *DashboardServiceTestSuite) TestAddUserToDashboard_AsAdmin() {
	ctx := context.Background()
	target := uuid.NewString()

	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(s.membership(domain.RoleAdmin), nil).Once()
	s.mockRepo.On("AddUserToDashboard", ctx, mock.MatchedBy(func(m domain.UserDashboard) bool {
		return m.UserID == target && m.DashboardID == s.dashboardID && m.Role == domain.RoleMember
	})).Return(nil).Once()

	err := s.service.AddUserToDashboard(ctx, s.userID, target, s.dashboardID, domain.RoleMember)

	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestListDashboardUsers_MemberMayList() {
	ctx := context.Background()
	members := []domain.UserDashboard{*s.membership(domain.RoleOwner)}

	s.mockRepo.On("FindUserDashboardRole", ctx, s.userID, s.dashboardID).
		Return(s.membership(domain.RoleMember), nil).Once()
	s.mockRepo.On("ListUsersByDashboardID", ctx, s.dashboardID).Return(members, nil).Once()

	got, err := s.service.ListDashboardUsers(ctx, s.userID, s.dashboardID)

	s.Require().NoError(err)
	s.Len(got, 1)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
