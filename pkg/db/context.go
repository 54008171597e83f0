package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hpc-fleet/hpc-fleet-manager/pkg/constants"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/errors"
	"github.com/hpc-fleet/hpc-fleet-manager/pkg/logger"
)

// NewContext returns a new context with transaction stored in it.
// Upon error, the original context is still returned along with an error
func (f *ConnectionFactory) NewContext(ctx context.Context) (context.Context, error) {
	tx, err := f.newTransaction()
	if err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, constants.TransactionIDkey, tx.txid)
	ctx = context.WithValue(ctx, constants.TransactionKey, tx)

	return ctx, nil
}

// TxContext creates a new transaction context from context.Background()
func (f *ConnectionFactory) TxContext() (ctx context.Context, err error) {
	return f.NewContext(context.Background())
}

// Resolve resolves the current transaction according to the rollback flag.
func Resolve(ctx context.Context) error {
	ulog := logger.NewUHCLogger(ctx)
	tx, ok := ctx.Value(constants.TransactionKey).(*txFactory)
	if !ok {
		return fmt.Errorf("could not retrieve transaction from context")
	}

	if tx.resolved {
		return nil
	}
	tx.resolved = true

	if tx.markedForRollback() {
		if err := tx.tx.Rollback(); err != nil {
			return fmt.Errorf("could not rollback transaction: %v", err)
		}
		ulog.Infof("Rolled back transaction")
		return nil
	}

	if err := tx.tx.Commit(); err != nil {
		// TODO:  what does the user see when this occurs? seems like they will get a false positive
		return fmt.Errorf("could not commit transaction: %v", err)
	}
	for _, f := range tx.postCommitActions {
		f()
	}
	tx.postCommitActions = nil
	return nil
}

// Begin opens a new transaction in the current context, closing the previous
// one if still open.
func Begin(ctx context.Context) error {
	tx, ok := ctx.Value(constants.TransactionKey).(*txFactory)
	if !ok {
		return fmt.Errorf("could not retrieve transaction from context")
	}
	if !tx.resolved {
		if err := Resolve(ctx); err != nil {
			return err
		}
	}
	return tx.begin()
}

// AddPostCommitAction registers a function to run after the transaction in the
// context commits successfully. Actions are dropped when the transaction is
// rolled back.
func AddPostCommitAction(ctx context.Context, f func()) error {
	tx, ok := ctx.Value(constants.TransactionKey).(*txFactory)
	if !ok {
		return fmt.Errorf("could not retrieve transaction from context")
	}
	tx.postCommitActions = append(tx.postCommitActions, f)
	return nil
}

// FromContext Retrieves the transaction from the context.
func FromContext(ctx context.Context) (*sql.Tx, error) {
	transaction, ok := ctx.Value(constants.TransactionKey).(*txFactory)
	if !ok {
		return nil, errors.GeneralError("could not retrieve transaction from context")
	}
	return transaction.tx, nil
}

// MarkForRollback flags the transaction stored in the context for rollback and logs whatever error caused the rollback
func MarkForRollback(ctx context.Context, err error) {
	ulog := logger.NewUHCLogger(ctx)
	transaction, ok := ctx.Value(constants.TransactionKey).(*txFactory)
	if !ok {
		ulog.Errorf("failed to mark transaction for rollback: could not retrieve transaction from context")
		return
	}
	transaction.rollbackFlag = true
	ulog.Infof("Marked transaction for rollback, err: %v", err)
}
