package database

import "context"

type txKey struct{}

// txInfo is what WithTx stores in ctx: a transaction a caller started, which
// ScheduleRepository.Save then joins instead of opening its own, plus the
// owned flag the caller passed. Save's own transaction is never stored here.
type txInfo struct {
	tx    Transaction
	owned bool
}

// WithTx stores a transaction in ctx so ScheduleRepository.save and
// loadTimeBlocks pick it up instead of running against the bare connection.
func WithTx(ctx context.Context, tx Transaction, owned bool) context.Context {
	return context.WithValue(ctx, txKey{}, txInfo{tx: tx, owned: owned})
}

// TxFromContext returns the ambient transaction, or nil if ctx carries none.
func TxFromContext(ctx context.Context) Transaction {
	info, ok := ctx.Value(txKey{}).(txInfo)
	if !ok || info.tx == nil {
		return nil
	}
	return info.tx
}

// ExecutorFromContext returns the ambient transaction if present, otherwise
// conn itself, so ScheduleRepository's read methods run against whichever
// one Save's caller intended without branching on ctx themselves.
func ExecutorFromContext(ctx context.Context, conn Connection) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
