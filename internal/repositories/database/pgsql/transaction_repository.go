package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/otecpro/otec_erp_backend/internal/apperrors"
	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	portsrepo "github.com/otecpro/otec_erp_backend/internal/core/ports/repositories"
	"github.com/otecpro/otec_erp_backend/internal/models"
	"github.com/otecpro/otec_erp_backend/internal/utils/mapping"
)

const transactionColumns = `transaction_id, kind, category, subcategory, is_direct, execution_id, client_id, amount_net, amount_tax, amount_total, document_number, pdf_url, vehicle_plate, odometer, invoice_ref, description, issue_date, due_date, payment_date, paid, outstanding, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the financial ledger.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// insertTransaction appends one ledger row. Plain INSERT, no upsert: the
// ledger is append-only and a duplicate id is a bug worth surfacing.
func insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	model := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := tx.Exec(ctx, query,
		model.TransactionID,
		model.Kind,
		model.Category,
		model.Subcategory,
		model.IsDirect,
		model.ExecutionID,
		model.ClientID,
		model.AmountNet,
		model.AmountTax,
		model.AmountTotal,
		model.DocumentNumber,
		model.PDFURL,
		model.VehiclePlate,
		model.Odometer,
		model.InvoiceRef,
		model.Description,
		model.IssueDate,
		model.DueDate,
		model.PaymentDate,
		model.Paid,
		model.Outstanding,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", model.TransactionID, err)
	}
	return nil
}

func scanTransaction(row pgx.CollectableRow) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Kind,
		&m.Category,
		&m.Subcategory,
		&m.IsDirect,
		&m.ExecutionID,
		&m.ClientID,
		&m.AmountNet,
		&m.AmountTax,
		&m.AmountTotal,
		&m.DocumentNumber,
		&m.PDFURL,
		&m.VehiclePlate,
		&m.Odometer,
		&m.InvoiceRef,
		&m.Description,
		&m.IssueDate,
		&m.DueDate,
		&m.PaymentDate,
		&m.Paid,
		&m.Outstanding,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction appends a ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveTransactionWithDirectCostLink appends a ledger entry and records its id
// on the execution's direct-cost list in the same transaction, so a direct
// expense can never exist half-linked.
func (r *PgxTransactionRepository) SaveTransactionWithDirectCostLink(ctx context.Context, txn domain.Transaction, executionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	linkQuery := `
		UPDATE executions
		SET direct_cost_txn_ids = array_append(direct_cost_txn_ids, $1)
		WHERE execution_id = $2;
	`
	tag, err := tx.Exec(ctx, linkQuery, txn.TransactionID, executionID)
	if err != nil {
		return fmt.Errorf("failed to link direct cost to execution %s: %w", executionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to link direct cost: execution %s: %w", executionID, apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", transactionID, err)
	}
	defer rows.Close()

	model, err := pgx.CollectOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(model)
	return &txn, nil
}

// ListTransactions retrieves ledger entries matching the filter, newest issue
// date first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}

	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.ExecutionID != nil {
		args = append(args, *filter.ExecutionID)
		query += fmt.Sprintf(" AND execution_id = $%d", len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}
	if filter.UnpaidOnly {
		query += " AND paid = FALSE"
	}
	query += " ORDER BY issue_date DESC, transaction_id;"

	return r.queryTransactions(ctx, query, args...)
}

// ListTransactionsByExecution retrieves every entry tagged with the execution.
func (r *PgxTransactionRepository) ListTransactionsByExecution(ctx context.Context, executionID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE execution_id = $1 ORDER BY issue_date, transaction_id;`
	return r.queryTransactions(ctx, query, executionID)
}

// ListTransactionsByIssueDate retrieves entries issued within [from, to].
func (r *PgxTransactionRepository) ListTransactionsByIssueDate(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE issue_date >= $1 AND issue_date <= $2 ORDER BY issue_date, transaction_id;`
	return r.queryTransactions(ctx, query, from, to)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateSettlement updates the payment tracking of one entry in place.
func (r *PgxTransactionRepository) UpdateSettlement(ctx context.Context, transactionID string, outstanding decimal.Decimal, paid bool, paymentDate *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET outstanding = $2, paid = $3, payment_date = $4, last_updated_by = $5, last_updated_at = $6
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, outstanding, paid, paymentDate, updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update settlement for transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveCreditNoteWithSettlement appends the credit note and applies the
// settlement to the referenced invoice atomically, so the ledger can never
// show a note without the matching balance change.
func (r *PgxTransactionRepository) SaveCreditNoteWithSettlement(ctx context.Context, note domain.Transaction, invoice domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertTransaction(ctx, tx, note); err != nil {
		return err
	}

	invoiceModel := mapping.ToModelTransaction(invoice)
	query := `
		UPDATE transactions
		SET outstanding = $2, paid = $3, payment_date = $4, last_updated_by = $5, last_updated_at = $6
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		invoiceModel.TransactionID,
		invoiceModel.Outstanding,
		invoiceModel.Paid,
		invoiceModel.PaymentDate,
		invoiceModel.LastUpdatedBy,
		invoiceModel.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to settle invoice %s: %w", invoiceModel.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
