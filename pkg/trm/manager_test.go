package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

// trackingTx records lifecycle calls. Embedding pgx.Tx fills in the rest of
// the interface, which these tests never touch.
type trackingTx struct {
	pgx.Tx
	commits   int
	rollbacks int
}

func (t *trackingTx) Commit(context.Context) error   { t.commits++; return nil }
func (t *trackingTx) Rollback(context.Context) error { t.rollbacks++; return nil }

func TestDoJoinsExistingTransaction(t *testing.T) {
	outer := &trackingTx{}
	ctx := context.WithValue(context.Background(), TxKey, pgx.Tx(outer))

	m := New(nil)

	called := false
	err := m.Do(ctx, func(inner context.Context) error {
		called = true
		if got, ok := inner.Value(TxKey).(pgx.Tx); !ok || got != pgx.Tx(outer) {
			t.Error("joined call does not see the outer transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !called {
		t.Fatal("fn was not called")
	}
	if outer.commits != 0 || outer.rollbacks != 0 {
		t.Errorf("joined Do finished the outer transaction: commits=%d rollbacks=%d",
			outer.commits, outer.rollbacks)
	}
}

func TestDoJoinedErrorLeavesOuterTransactionOpen(t *testing.T) {
	outer := &trackingTx{}
	ctx := context.WithValue(context.Background(), TxKey, pgx.Tx(outer))

	m := New(nil)

	wantErr := errors.New("inner failure")
	if err := m.Do(ctx, func(context.Context) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if outer.rollbacks != 0 {
		t.Error("joined Do rolled back the owner's transaction")
	}
}
