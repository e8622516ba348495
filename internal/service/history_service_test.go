package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/internal/service/mocks"
	"github.com/obrasync/cashbox/pkg/uow"
	uowmocks "github.com/obrasync/cashbox/pkg/uow/mocks"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockCashboxRepo *mocks.MockCashboxRepository
	mockMovRepo     *mocks.MockMovementRepository
	historyService  *HistoryService
}

func TestHistoryServiceSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}

func (s *HistoryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockCashboxRepo = mocks.NewMockCashboxRepository(s.mockCtrl)
	s.mockMovRepo = mocks.NewMockMovementRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CashboxRepoName)).
		Return(s.mockCashboxRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.MovementRepoName)).
		Return(s.mockMovRepo, nil).AnyTimes()

	historyService, servErr := NewHistoryService(s.mockUOW)
	s.Require().NoError(servErr)
	s.historyService = historyService
}

func (s *HistoryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *HistoryServiceTestSuite) TestGetHistory() {
	usd := domain.CurrencyUSD
	items := []domain.CashMovement{{ID: 3}, {ID: 2}}

	s.mockCashboxRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openCashbox("0", "0"), nil)
	s.mockMovRepo.EXPECT().Page(gomock.Any(), repoargs.MovementQuery{
		CashboxID: 1,
		Currency:  &usd,
		Limit:     10,
		Offset:    20,
	}).Return(items, 42, nil)

	page, err := s.historyService.GetHistory(s.T().Context(), 1, domain.HistoryFilter{
		Page:     3,
		Limit:    10,
		Currency: &usd,
	})
	s.Require().NoError(err)
	s.Equal(items, page.Items)
	s.Equal(42, page.Total)
	s.Equal(3, page.Page)
	s.Equal(10, page.Limit)
}

func (s *HistoryServiceTestSuite) TestGetHistory_ClampsPagination() {
	s.mockCashboxRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openCashbox("0", "0"), nil)
	s.mockMovRepo.EXPECT().Page(gomock.Any(), repoargs.MovementQuery{
		CashboxID: 1,
		Limit:     domain.MaxPageLimit,
		Offset:    0,
	}).Return(nil, 0, nil)

	page, err := s.historyService.GetHistory(s.T().Context(), 1, domain.HistoryFilter{Page: -1, Limit: 1000})
	s.Require().NoError(err)
	s.Equal(1, page.Page)
	s.Equal(domain.MaxPageLimit, page.Limit)
	s.NotNil(page.Items)
	s.Empty(page.Items)
}

func (s *HistoryServiceTestSuite) TestGetHistory_Errors() {
	s.Run("unknown cashbox", func() {
		s.mockCashboxRepo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, domain.ErrRecordNotFound)
		_, err := s.historyService.GetHistory(s.T().Context(), 9, domain.HistoryFilter{})
		s.Require().ErrorIs(err, domain.ErrNotFound)
	})

	s.Run("inverted date range", func() {
		start, end := testDay(3), testDay(1)
		_, err := s.historyService.GetHistory(s.T().Context(), 1, domain.HistoryFilter{StartDate: &start, EndDate: &end})
		s.Require().ErrorIs(err, domain.ErrValidation)
	})
}

func (s *HistoryServiceTestSuite) TestMovements() {
	movements := []domain.CashMovement{
		{ID: 1, Kind: domain.MovementKindIncome, Currency: domain.CurrencyARS, EffectiveDate: testDay(1)},
		{ID: 2, Kind: domain.MovementKindExpense, Currency: domain.CurrencyARS, EffectiveDate: testDay(2)},
		{ID: 3, Kind: domain.MovementKindIncome, Currency: domain.CurrencyARS, EffectiveDate: testDay(1)},
	}
	s.mockCashboxRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openCashbox("0", "0"), nil)
	s.mockMovRepo.EXPECT().ListByCashboxID(gomock.Any(), int64(1)).Return(movements, nil)

	kind := domain.MovementKindIncome
	seq, err := s.historyService.Movements(s.T().Context(), 1, domain.HistoryFilter{Kind: &kind})
	s.Require().NoError(err)

	var ids []int64
	for m := range seq {
		ids = append(ids, m.ID)
	}
	s.Equal([]int64{3, 1}, ids)
}
