package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-swap/pkg/uow"
	"github.com/fsdevblog/groph-swap/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

// fakeTx реализует только те методы pgx.Tx, которые вызывает UnitOfWork.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(_ context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(_ context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type counterRepo struct {
	db uow.DBTX
}

const counterRepoName uow.RepositoryName = "counter"

type UnitOfWorkTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockConn *mocks.MockConn
	unit     *uow.UnitOfWork
	created  int
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockConn = mocks.NewMockConn(s.ctrl)
	s.unit = uow.NewUnitOfWork(s.mockConn)
	s.created = 0

	s.Require().NoError(s.unit.Register(counterRepoName, func(db uow.DBTX) uow.Repository {
		s.created++
		return &counterRepo{db: db}
	}))
}

func (s *UnitOfWorkTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UnitOfWorkTestSuite) TestRegister_Duplicate() {
	err := s.unit.Register(counterRepoName, func(db uow.DBTX) uow.Repository { return &counterRepo{db: db} })
	s.Require().ErrorIs(err, uow.ErrRepositoryAlreadyRegistered)

	err = s.unit.Register("nil", nil)
	s.Require().ErrorIs(err, uow.ErrInvalidRepositoryType)
}

func (s *UnitOfWorkTestSuite) TestGetRepositoryAs() {
	repo, err := uow.GetRepositoryAs[*counterRepo](s.unit, counterRepoName)
	s.Require().NoError(err)
	s.Equal(s.mockConn, repo.db)

	_, err = uow.GetRepositoryAs[*counterRepo](s.unit, "missing")
	s.Require().ErrorIs(err, uow.ErrRepositoryNotRegistered)

	_, err = uow.GetRepositoryAs[string](s.unit, counterRepoName)
	s.Require().ErrorIs(err, uow.ErrInvalidRepositoryType)
}

func (s *UnitOfWorkTestSuite) TestDo_Commit() {
	tx := new(fakeTx)
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	err := s.unit.Do(s.T().Context(), func(_ context.Context, t uow.TX) error {
		first, getErr := uow.GetAs[*counterRepo](t, counterRepoName)
		s.Require().NoError(getErr)
		second, getErr := uow.GetAs[*counterRepo](t, counterRepoName)
		s.Require().NoError(getErr)

		// внутри транзакции репозиторий создается один раз и работает поверх tx.
		s.Same(first, second)
		s.Equal(tx, first.db)
		return nil
	})

	s.Require().NoError(err)
	s.True(tx.committed)
	s.False(tx.rolledBack)
	s.Equal(1, s.created)
}

func (s *UnitOfWorkTestSuite) TestDo_Rollback() {
	fnErr := errors.New("step failed")
	commitErr := errors.New("serialization failure")

	cases := []struct {
		name      string
		tx        *fakeTx
		fn        func(context.Context, uow.TX) error
		wantErr   error
		wantRollb bool
	}{
		{
			name:      "fn error",
			tx:        new(fakeTx),
			fn:        func(context.Context, uow.TX) error { return fnErr },
			wantErr:   fnErr,
			wantRollb: true,
		},
		{
			name:      "panic",
			tx:        new(fakeTx),
			fn:        func(context.Context, uow.TX) error { panic("boom") },
			wantErr:   uow.ErrPanicInTx,
			wantRollb: true,
		},
		{
			name:      "commit error",
			tx:        &fakeTx{commitErr: commitErr},
			fn:        func(context.Context, uow.TX) error { return nil },
			wantErr:   uow.ErrCommitTx,
			wantRollb: true,
		},
		{
			name: "unknown repository",
			tx:   new(fakeTx),
			fn: func(_ context.Context, t uow.TX) error {
				_, err := uow.GetAs[*counterRepo](t, "missing")
				return err
			},
			wantErr:   uow.ErrRepositoryNotRegistered,
			wantRollb: true,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockConn.EXPECT().Begin(gomock.Any()).Return(t.tx, nil)

			err := s.unit.Do(s.T().Context(), t.fn)
			s.Require().ErrorIs(err, t.wantErr)
			s.False(t.tx.committed)
			s.Equal(t.wantRollb, t.tx.rolledBack)
		})
	}
}

func (s *UnitOfWorkTestSuite) TestDo_BeginError() {
	s.mockConn.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection refused"))

	called := false
	err := s.unit.Do(s.T().Context(), func(context.Context, uow.TX) error {
		called = true
		return nil
	})
	s.Require().ErrorIs(err, uow.ErrBeginTx)
	s.False(called)
}
