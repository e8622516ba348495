//go:build integration

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	_ "github.com/golang-migrate/migrate/v4/source/file"       //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/repository/pgrepo"
	"github.com/obrasync/cashbox/pkg/uow"
)

const concurrentCallers = 8

type PostgresIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	services  *AppServices
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationTestSuite))
}

func (s *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("cashbox_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	l, _ := test.NewNullLogger()
	pool, err := pgrepo.Connect(ctx, "../db/migrations", dsn, l)
	s.Require().NoError(err)
	s.pool = pool

	unitOfWork := uow.NewUnitOfWork(pool)
	s.Require().NoError(pgrepo.Register(unitOfWork))

	services, err := Factory(unitOfWork, NewLogrusAuditLogger(l))
	s.Require().NoError(err)
	s.services = services
}

func (s *PostgresIntegrationTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresIntegrationTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(),
		`TRUNCATE explanation_requests, cash_movements, cashboxes, users RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationTestSuite) createUser(name string) int64 {
	var id int64
	err := s.pool.QueryRow(s.T().Context(), `INSERT INTO users (username) VALUES ($1) RETURNING id`, name).Scan(&id)
	s.Require().NoError(err)
	return id
}

// runConcurrently запускает fn в n горутинах одновременно и возвращает их ошибки.
func runConcurrently(n int, fn func() error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}()
	}
	close(start)
	wg.Wait()
	return errs
}

func countSucceeded(errs []error) (ok int, conflicts int) {
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		}
	}
	return ok, conflicts
}

func (s *PostgresIntegrationTestSuite) TestLifecycle() {
	ctx := s.T().Context()
	owner := s.createUser("owner")
	approver := s.createUser("approver")
	cashboxes := s.services.CashboxService

	cb, err := cashboxes.Open(ctx, OpenArgs{
		UserID:  owner,
		Opening: domain.Balances{ARS: d("1000"), USD: d("50")},
		Date:    testDay0,
	})
	s.Require().NoError(err)

	expenseID := int64(501)
	_, err = cashboxes.PostMovement(ctx, PostMovementArgs{
		UserID:        owner,
		Kind:          domain.MovementKindExpense,
		Amount:        d("200"),
		Currency:      domain.CurrencyARS,
		EffectiveDate: testDay(1),
		ExpenseID:     &expenseID,
	})
	s.Require().NoError(err)

	_, err = cashboxes.Refill(ctx, RefillArgs{CashboxID: cb.ID, Amount: d("10"), Currency: domain.CurrencyUSD,
		EffectiveDate: testDay(2)})
	s.Require().NoError(err)

	balance, err := cashboxes.GetBalance(ctx, cb.ID)
	s.Require().NoError(err)
	s.True(d("800").Equal(balance.Running.ARS))
	s.True(d("60").Equal(balance.Running.USD))

	closed, err := cashboxes.Close(ctx, CloseArgs{
		CashboxID: cb.ID,
		Declared:  domain.Balances{ARS: d("790"), USD: d("60")},
		Date:      testDay(3),
	})
	s.Require().NoError(err)
	s.Equal(domain.ApprovalStatePending, closed.ApprovalState())
	s.True(d("-10").Equal(closed.Difference.ARS))

	_, err = s.services.ApprovalService.RequestExplanation(ctx, RequestExplanationArgs{
		CashboxID: cb.ID,
		Message:   "please explain the missing 10 ARS",
	})
	s.Require().NoError(err)
	pending, err := s.services.ApprovalService.ExplanationsForDelivery(ctx, 10)
	s.Require().NoError(err)
	s.Len(pending, 1)

	approved, err := s.services.ApprovalService.Approve(ctx, ApproveArgs{CashboxID: cb.ID, ApproverID: approver})
	s.Require().NoError(err)
	s.Equal(domain.ApprovalStateApproved, approved.ApprovalState())

	_, err = cashboxes.ManualAdjustment(ctx, ManualAdjustmentArgs{
		CashboxID: cb.ID,
		Amount:    d("-10"),
		Currency:  domain.CurrencyARS,
		Reason:    "lost receipt",
	})
	s.Require().NoError(err)

	page, err := s.services.HistoryService.GetHistory(ctx, cb.ID, domain.HistoryFilter{Limit: 2})
	s.Require().NoError(err)
	s.Equal(3, page.Total)
	s.Len(page.Items, 2)
	s.Equal(domain.MovementKindDifference, page.Items[0].Kind)
}

func (s *PostgresIntegrationTestSuite) TestConcurrentClose() {
	ctx := s.T().Context()
	owner := s.createUser("owner")
	cb, err := s.services.CashboxService.Open(ctx, OpenArgs{UserID: owner, Date: testDay0})
	s.Require().NoError(err)

	errs := runConcurrently(concurrentCallers, func() error {
		_, closeErr := s.services.CashboxService.Close(ctx, CloseArgs{
			CashboxID: cb.ID,
			Declared:  domain.Balances{ARS: d("5")},
			Date:      testDay(1),
		})
		return closeErr
	})

	ok, conflicts := countSucceeded(errs)
	s.Equal(1, ok)
	s.Equal(concurrentCallers-1, conflicts)
}

func (s *PostgresIntegrationTestSuite) TestConcurrentApprove() {
	ctx := s.T().Context()
	owner := s.createUser("owner")
	approver := s.createUser("approver")
	cb, err := s.services.CashboxService.Open(ctx, OpenArgs{UserID: owner, Date: testDay0})
	s.Require().NoError(err)
	_, err = s.services.CashboxService.Close(ctx, CloseArgs{
		CashboxID: cb.ID,
		Declared:  domain.Balances{USD: d("1")},
		Date:      testDay(1),
	})
	s.Require().NoError(err)

	errs := runConcurrently(concurrentCallers, func() error {
		_, approveErr := s.services.ApprovalService.Approve(ctx, ApproveArgs{CashboxID: cb.ID, ApproverID: approver})
		return approveErr
	})

	ok, conflicts := countSucceeded(errs)
	s.Equal(1, ok)
	s.Equal(concurrentCallers-1, conflicts)
}

func (s *PostgresIntegrationTestSuite) TestConcurrentOpen() {
	ctx := s.T().Context()
	owner := s.createUser("owner")

	errs := runConcurrently(concurrentCallers, func() error {
		_, openErr := s.services.CashboxService.Open(ctx, OpenArgs{UserID: owner, Date: testDay0})
		return openErr
	})

	ok, conflicts := countSucceeded(errs)
	s.Equal(1, ok)
	s.Equal(concurrentCallers-1, conflicts)
}

func (s *PostgresIntegrationTestSuite) TestApproveByExternalApprover() {
	ctx := s.T().Context()
	owner := s.createUser("owner")
	cb, err := s.services.CashboxService.Open(ctx, OpenArgs{UserID: owner, Date: testDay0})
	s.Require().NoError(err)
	_, err = s.services.CashboxService.Close(ctx, CloseArgs{
		CashboxID: cb.ID,
		Declared:  domain.Balances{ARS: d("3")},
		Date:      testDay(1),
	})
	s.Require().NoError(err)

	// согласующий приходит из токена и может отсутствовать в users
	const externalApprover = int64(9001)
	approved, err := s.services.ApprovalService.Approve(ctx, ApproveArgs{CashboxID: cb.ID, ApproverID: externalApprover})
	s.Require().NoError(err)
	s.Equal(domain.ApprovalStateApproved, approved.ApprovalState())
	s.Require().NotNil(approved.DifferenceApprovedByID)
	s.Equal(externalApprover, *approved.DifferenceApprovedByID)
}
