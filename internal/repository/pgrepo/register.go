package pgrepo

import (
	"fmt"

	"github.com/obrasync/cashbox/internal/repository/repoargs"
	"github.com/obrasync/cashbox/pkg/uow"
)

// Register регистрирует все Postgres репозитории в unit of work.
func Register(u uow.UOW) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(conn uow.DBTX) uow.Repository {
			return NewUserRepository(conn)
		},
		repoargs.CashboxRepoName: func(conn uow.DBTX) uow.Repository {
			return NewCashboxRepository(conn)
		},
		repoargs.MovementRepoName: func(conn uow.DBTX) uow.Repository {
			return NewMovementRepository(conn)
		},
		repoargs.ExplanationRepoName: func(conn uow.DBTX) uow.Repository {
			return NewExplanationRepository(conn)
		},
	}
	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return fmt.Errorf("register %s repository: %w", name, err)
		}
	}
	return nil
}
