package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestWithinTransactionCommits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM verifications`)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	tx := NewTransactor(mock, zap.NewNop())
	err = tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		// nested calls reuse the open transaction
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := Conn(ctx, mock).Exec(ctx, `DELETE FROM verifications`)
			return err
		})
	})
	if err != nil {
		t.Fatalf("WithinTransaction: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithinTransactionRollsBackAndKeepsError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	domainErr := errors.New("night count inconsistent")
	err = NewTransactor(mock, zap.NewNop()).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return domainErr
	})
	if !errors.Is(err, domainErr) {
		t.Fatalf("expected the callback error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithinTransactionRollsBackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected the panic to propagate")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}()

	_ = NewTransactor(mock, zap.NewNop()).WithinTransaction(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})
}
