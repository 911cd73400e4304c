package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/metrics"
)

// TransactionRepository implements usecase.TransactionRepository over the
// transactions table.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool, mets *metrics.Metrics) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		retrier: NewRetrier(),
		metrics: mets,
	}
}

// ListByItem returns an item's transactions in replay order, oldest first.
// A non-nil endDate bounds the stream inclusively by transaction day.
func (r *TransactionRepository) ListByItem(ctx context.Context, code string, endDate *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT txn_date, quantity, amount, voucher_type, record_type, voucher_number
		FROM transactions
		WHERE item_code = $1`
	args := []any{code}
	if endDate != nil {
		query += ` AND txn_date <= $2`
		args = append(args, timeToPgDate(*endDate))
	}
	query += ` ORDER BY txn_date, record_type, id`

	var txns []domain.Transaction
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		txns = txns[:0]
		for rows.Next() {
			var (
				txnDate       pgtype.Date
				quantity      pgtype.Numeric
				amount        pgtype.Numeric
				voucherType   pgtype.Text
				recordType    int
				voucherNumber pgtype.Text
			)
			if err := rows.Scan(&txnDate, &quantity, &amount, &voucherType, &recordType, &voucherNumber); err != nil {
				return err
			}
			txns = append(txns, domain.Transaction{
				Date:          dateToTime(txnDate),
				Quantity:      numericToDecimal(quantity),
				Amount:        numericToDecimal(amount),
				VoucherType:   textToString(voucherType),
				RecordType:    recordType,
				VoucherNumber: textToString(voucherNumber),
			})
		}
		return rows.Err()
	})

	r.observe("list_transactions", err)
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// SumAmounts returns the summed signed amount of an item's transactions
// within the inclusive [from, to] day bounds. Nil bounds are open.
func (r *TransactionRepository) SumAmounts(ctx context.Context, code string, from, to *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE item_code = $1`
	args := []any{code}
	if from != nil {
		args = append(args, timeToPgDate(*from))
		query += fmt.Sprintf(` AND txn_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, timeToPgDate(*to))
		query += fmt.Sprintf(` AND txn_date <= $%d`, len(args))
	}

	var sum pgtype.Numeric
	err := r.retrier.Retry(ctx, func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(&sum)
	})

	r.observe("sum_amounts", err)
	if err != nil {
		return decimal.Zero, err
	}
	return numericToDecimal(sum), nil
}

func (r *TransactionRepository) observe(operation string, err error) {
	r.metrics.StoreQueries.WithLabelValues(operation).Inc()
	if err != nil {
		r.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}
