package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(_ context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(_ context.Context) error {
	if f.committed || f.rolledBack {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakePool struct {
	DBTX
	tx       *fakeTx
	opts     pgx.TxOptions
	beginErr error
}

func (f *fakePool) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.opts = opts
	f.tx = new(fakeTx)
	return f.tx, nil
}

type stubRepo struct {
	conn DBTX
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	pool *fakePool
	u    *UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.pool = new(fakePool)
	s.u = NewUnitOfWork(s.pool, WithIsoLevel(pgx.RepeatableRead))
	s.Require().NoError(s.u.Register("stub", func(conn DBTX) Repository {
		return &stubRepo{conn: conn}
	}))
}

func (s *UnitOfWorkTestSuite) TestRegister_Duplicate() {
	err := s.u.Register("stub", func(DBTX) Repository { return nil })
	s.Require().ErrorIs(err, ErrRepositoryAlreadyRegistered)
}

func (s *UnitOfWorkTestSuite) TestDo_Commit() {
	err := s.u.Do(s.T().Context(), func(_ context.Context, tx TX) error {
		repo, err := GetAs[*stubRepo](tx, "stub")
		s.Require().NoError(err)
		s.Same(s.pool.tx, repo.conn)

		again, err := GetAs[*stubRepo](tx, "stub")
		s.Require().NoError(err)
		s.Same(repo, again)
		return nil
	})
	s.Require().NoError(err)
	s.True(s.pool.tx.committed)
	s.False(s.pool.tx.rolledBack)
	s.Equal(pgx.RepeatableRead, s.pool.opts.IsoLevel)
}

func (s *UnitOfWorkTestSuite) TestDo_RollbackOnError() {
	fnErr := errors.New("boom")
	err := s.u.Do(s.T().Context(), func(_ context.Context, _ TX) error {
		return fnErr
	})
	s.Require().ErrorIs(err, fnErr)
	s.False(s.pool.tx.committed)
	s.True(s.pool.tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestDo_RollbackOnCancel() {
	ctx, cancel := context.WithCancel(s.T().Context())
	err := s.u.Do(ctx, func(_ context.Context, _ TX) error {
		cancel()
		return nil
	})
	s.Require().ErrorIs(err, context.Canceled)
	s.False(s.pool.tx.committed)
	s.True(s.pool.tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestDo_BeginError() {
	s.pool.beginErr = errors.New("no conn")
	called := false
	err := s.u.Do(s.T().Context(), func(_ context.Context, _ TX) error {
		called = true
		return nil
	})
	s.Require().Error(err)
	s.False(called)
}

func (s *UnitOfWorkTestSuite) TestGetAs_Errors() {
	err := s.u.Do(s.T().Context(), func(_ context.Context, tx TX) error {
		_, err := GetAs[*stubRepo](tx, "missing")
		s.Require().ErrorIs(err, ErrRepositoryNotRegistered)

		_, err = GetAs[*UnitOfWork](tx, "stub")
		s.Require().ErrorIs(err, ErrInvalidRepositoryType)
		return nil
	})
	s.Require().NoError(err)
}

func (s *UnitOfWorkTestSuite) TestGetRepositoryAs() {
	repo, err := GetRepositoryAs[*stubRepo](s.u, "stub")
	s.Require().NoError(err)
	s.Same(s.pool, repo.conn)

	_, err = GetRepositoryAs[*stubRepo](s.u, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}
