package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/internal/service/mocks"
	"github.com/obrasync/cashbox/pkg/uow"
	uowmocks "github.com/obrasync/cashbox/pkg/uow/mocks"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockCashboxRepo     *mocks.MockCashboxRepository
	mockExplanationRepo *mocks.MockExplanationRepository
	mockAudit           *mocks.MockAuditLogger
	approvalService     *ApprovalService
}

func TestApprovalServiceSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}

func (s *ApprovalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCashboxRepo = mocks.NewMockCashboxRepository(s.mockCtrl)
	s.mockExplanationRepo = mocks.NewMockExplanationRepository(s.mockCtrl)
	s.mockAudit = mocks.NewMockAuditLogger(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ExplanationRepoName)).
		Return(s.mockExplanationRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CashboxRepoName)).Return(s.mockCashboxRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ExplanationRepoName)).
		Return(s.mockExplanationRepo, nil).AnyTimes()

	approvalService, servErr := NewApprovalService(s.mockUOW, s.mockAudit)
	s.Require().NoError(servErr)
	s.approvalService = approvalService.SetClock(func() time.Time { return testNow })
}

func (s *ApprovalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ApprovalServiceTestSuite) expectTx() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

// expectUpdateApproval мок условного UPDATE, который применяет аргументы к копии cb.
func (s *ApprovalServiceTestSuite) expectUpdateApproval(cb *domain.Cashbox, got *repoargs.CashboxApproval) {
	s.mockCashboxRepo.EXPECT().UpdateApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CashboxApproval) (*domain.Cashbox, error) {
			*got = args
			next := *cb
			next.DifferenceApproved = args.DifferenceApproved
			next.DifferenceApprovedByID = args.DifferenceApprovedByID
			next.DifferenceApprovedAt = args.DifferenceApprovedAt
			next.RejectionReason = args.RejectionReason
			next.RejectedAt = args.RejectedAt
			next.Version = args.Version + 1
			return &next, nil
		})
}

func (s *ApprovalServiceTestSuite) TestApprove() {
	cb := closedCashbox("-5", false)
	var got repoargs.CashboxApproval

	s.expectTx()
	s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(cb, nil)
	s.expectUpdateApproval(cb, &got)
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e domain.AuditEntry) {
			s.Equal(domain.ActionApprove, e.Action)
			s.Equal(int64(55), e.ActorID)
			s.Equal(domain.ApprovalStatePending, e.Before.ApprovalState())
			s.Equal(domain.ApprovalStateApproved, e.After.ApprovalState())
		})

	approved, err := s.approvalService.Approve(s.T().Context(), ApproveArgs{CashboxID: 1, ApproverID: 55})
	s.Require().NoError(err)

	s.Equal(int64(3), got.Version)
	s.True(got.DifferenceApproved)
	s.Require().NotNil(got.DifferenceApprovedByID)
	s.Equal(int64(55), *got.DifferenceApprovedByID)
	s.Require().NotNil(got.DifferenceApprovedAt)
	s.Equal(testNow, *got.DifferenceApprovedAt)
	s.Nil(got.RejectedAt)

	s.Equal(domain.ApprovalStateApproved, approved.ApprovalState())
	// при согласовании расхождение не меняется
	s.True(d("-5").Equal(approved.Difference.ARS))
}

func (s *ApprovalServiceTestSuite) TestApprove_InvalidState() {
	rejected := closedCashbox("-5", false)
	at := testDay(6)
	reason := "no receipts"
	rejected.RejectedAt = &at
	rejected.RejectionReason = &reason

	cases := []struct {
		name string
		cb   *domain.Cashbox
	}{
		{name: "open cashbox", cb: openCashbox("0", "0")},
		{name: "closed without difference", cb: closedCashbox("0", true)},
		{name: "already approved", cb: closedCashbox("-5", true)},
		{name: "rejected", cb: rejected},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectTx()
			s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(tc.cb, nil)

			_, err := s.approvalService.Approve(s.T().Context(), ApproveArgs{CashboxID: 1, ApproverID: 55})
			var cErr *domain.ConflictError
			s.Require().ErrorAs(err, &cErr)
			s.Equal(domain.ActionApprove, cErr.Action)
		})
	}
}

func (s *ApprovalServiceTestSuite) TestApprove_ConcurrentApprovals() {
	cb := closedCashbox("-5", false)

	s.expectTx()
	s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(cb, nil)
	s.mockCashboxRepo.EXPECT().UpdateApproval(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrConcurrentModification)

	_, err := s.approvalService.Approve(s.T().Context(), ApproveArgs{CashboxID: 1, ApproverID: 55})
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *ApprovalServiceTestSuite) TestApprove_MissingApprover() {
	_, err := s.approvalService.Approve(s.T().Context(), ApproveArgs{CashboxID: 1})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *ApprovalServiceTestSuite) TestRejectDifference() {
	cb := closedCashbox("12.30", false)
	var got repoargs.CashboxApproval

	s.expectTx()
	s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(cb, nil)
	s.expectUpdateApproval(cb, &got)
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any())

	rejected, err := s.approvalService.RejectDifference(s.T().Context(), RejectDifferenceArgs{
		CashboxID: 1,
		ActorID:   55,
		Reason:    "  surplus not explained ",
	})
	s.Require().NoError(err)

	s.False(got.DifferenceApproved)
	s.Nil(got.DifferenceApprovedByID)
	s.Require().NotNil(got.RejectionReason)
	s.Equal("surplus not explained", *got.RejectionReason)
	s.Equal(domain.ApprovalStateRejected, rejected.ApprovalState())
}

func (s *ApprovalServiceTestSuite) TestRejectDifference_WithoutReason() {
	cb := closedCashbox("-5", false)
	var got repoargs.CashboxApproval

	s.expectTx()
	s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(cb, nil)
	s.expectUpdateApproval(cb, &got)
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any())

	rejected, err := s.approvalService.RejectDifference(s.T().Context(), RejectDifferenceArgs{
		CashboxID: 1,
		ActorID:   55,
		Reason:    " ",
	})
	s.Require().NoError(err)

	s.Nil(got.RejectionReason)
	s.Require().NotNil(got.RejectedAt)
	s.Equal(domain.ApprovalStateRejected, rejected.ApprovalState())
}

func (s *ApprovalServiceTestSuite) TestRequestExplanation() {
	cb := closedCashbox("-5", false)
	req := &domain.ExplanationRequest{ID: 3, CashboxID: 1, UserID: 7, Message: "where is the money?"}

	s.expectTx()
	s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(cb, nil)
	s.mockExplanationRepo.EXPECT().Create(gomock.Any(), repoargs.ExplanationCreate{
		CashboxID: 1,
		UserID:    7,
		Message:   "where is the money?",
	}).Return(req, nil)
	s.mockCashboxRepo.EXPECT().BumpVersion(gomock.Any(), int64(1), int64(3)).Return(int64(4), nil)
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e domain.AuditEntry) {
			s.Equal(domain.ActionRequestExplanation, e.Action)
			// состояние согласования не меняется
			s.Equal(domain.ApprovalStatePending, e.After.ApprovalState())
			s.Equal(int64(4), e.After.Version)
		})

	got, err := s.approvalService.RequestExplanation(s.T().Context(), RequestExplanationArgs{
		CashboxID: 1,
		ActorID:   55,
		Message:   "where is the money?",
	})
	s.Require().NoError(err)
	s.Equal(req, got)
}

func (s *ApprovalServiceTestSuite) TestRequestExplanation_NotPending() {
	s.expectTx()
	s.mockCashboxRepo.EXPECT().FindForUpdate(gomock.Any(), int64(1)).Return(closedCashbox("-5", true), nil)

	_, err := s.approvalService.RequestExplanation(s.T().Context(), RequestExplanationArgs{
		CashboxID: 1,
		Message:   "why?",
	})
	var cErr *domain.ConflictError
	s.Require().ErrorAs(err, &cErr)
	s.Equal(domain.ApprovalStateApproved, cErr.State)
}

func (s *ApprovalServiceTestSuite) TestExplanationsForDelivery() {
	pending := []domain.ExplanationRequest{{ID: 1}, {ID: 2}}
	s.mockExplanationRepo.EXPECT().GetPending(gomock.Any(), uint(50)).Return(pending, nil)

	got, err := s.approvalService.ExplanationsForDelivery(s.T().Context(), 50)
	s.Require().NoError(err)
	s.Equal(pending, got)
}

func (s *ApprovalServiceTestSuite) TestRecordDeliveries() {
	results := []repoargs.DeliveryResult{{ID: 1, Delivered: true}, {ID: 2}}

	s.Run("success", func() {
		s.expectTx()
		s.mockExplanationRepo.EXPECT().BatchRecordDeliveries(gomock.Any(), results, gomock.Any()).
			Do(func(_ context.Context, res []repoargs.DeliveryResult, fn repoargs.ExplanationBatchExec) {
				for i := range res {
					fn(i, nil)
				}
			})
		s.Require().NoError(s.approvalService.RecordDeliveries(s.T().Context(), results))
	})

	s.Run("batch error", func() {
		batchErr := errors.New("connection reset")
		s.expectTx()
		s.mockExplanationRepo.EXPECT().BatchRecordDeliveries(gomock.Any(), results, gomock.Any()).
			Do(func(_ context.Context, _ []repoargs.DeliveryResult, fn repoargs.ExplanationBatchExec) {
				fn(0, nil)
				fn(1, batchErr)
			})
		s.Require().ErrorIs(s.approvalService.RecordDeliveries(s.T().Context(), results), batchErr)
	})

	s.Run("nothing to record", func() {
		s.Require().NoError(s.approvalService.RecordDeliveries(s.T().Context(), nil))
	})
}
