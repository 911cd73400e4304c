package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/stockval/internal/domain"
	"github.com/iho/stockval/internal/infrastructure/metrics"
)

// ItemParameterRepository implements usecase.ItemParameterRepository.
type ItemParameterRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewItemParameterRepository creates a new ItemParameterRepository.
func NewItemParameterRepository(pool *pgxpool.Pool, mets *metrics.Metrics) *ItemParameterRepository {
	return &ItemParameterRepository{
		pool:    pool,
		retrier: NewRetrier(),
		metrics: mets,
	}
}

// Search returns parameter rows for stock items matching the filter. Filters
// combine with AND; an empty filter returns every parameter row.
func (r *ItemParameterRepository) Search(ctx context.Context, filter domain.ItemParameterFilter) ([]*domain.ItemParameter, error) {
	query := `
		SELECT p.item_code, i.name, p.voucher_type, p.voucher_number, p.param_date,
			p.attr1, p.attr2, p.attr3, p.attr4, p.attr5,
			p.mrp, p.sale_price, p.barcode, p.quantity
		FROM item_parameters p
		JOIN items i ON i.code = p.item_code
		WHERE i.category = $1`
	args := []any{int(domain.CategoryStock)}

	if filter.ItemCode != "" {
		args = append(args, filter.ItemCode)
		query += fmt.Sprintf(` AND p.item_code = $%d`, len(args))
	}
	if filter.Barcode != "" {
		args = append(args, filter.Barcode)
		query += fmt.Sprintf(` AND p.barcode = $%d`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (i.name ILIKE $%d OR p.barcode ILIKE $%d
			OR p.attr1 ILIKE $%d OR p.attr2 ILIKE $%d OR p.attr3 ILIKE $%d
			OR p.attr4 ILIKE $%d OR p.attr5 ILIKE $%d)`, n, n, n, n, n, n, n)
	}
	query += ` ORDER BY i.name, p.barcode`

	var params []*domain.ItemParameter
	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		params = params[:0]
		for rows.Next() {
			var (
				p             domain.ItemParameter
				voucherType   pgtype.Text
				voucherNumber pgtype.Text
				paramDate     pgtype.Date
				attrs         [5]pgtype.Text
				mrp           pgtype.Numeric
				salePrice     pgtype.Numeric
				barcode       pgtype.Text
				quantity      pgtype.Numeric
			)
			if err := rows.Scan(&p.ItemCode, &p.ItemName, &voucherType, &voucherNumber, &paramDate,
				&attrs[0], &attrs[1], &attrs[2], &attrs[3], &attrs[4],
				&mrp, &salePrice, &barcode, &quantity); err != nil {
				return err
			}
			p.VoucherType = textToString(voucherType)
			p.VoucherNumber = textToString(voucherNumber)
			p.Date = dateToTime(paramDate)
			for i := range attrs {
				p.Attributes[i] = textToString(attrs[i])
			}
			p.MRP = numericToDecimal(mrp)
			p.SalePrice = numericToDecimal(salePrice)
			p.Barcode = textToString(barcode)
			p.Quantity = numericToDecimal(quantity)
			params = append(params, &p)
		}
		return rows.Err()
	})

	r.observe("search_item_parameters", err)
	if err != nil {
		return nil, err
	}
	return params, nil
}

func (r *ItemParameterRepository) observe(operation string, err error) {
	r.metrics.StoreQueries.WithLabelValues(operation).Inc()
	if err != nil {
		r.metrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}
