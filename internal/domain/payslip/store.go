package payslip

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists payslip records in Postgres. Line items are stored as JSONB
// alongside the finalized totals.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `
  id, owner_id, COALESCE(child_profile_id::text, ''), employee_name, company_name,
  payroll_number, pay_period_start, pay_period_end, period,
  gross_salary, total_deductions, net_salary, currency,
  payment_entries, deductions, created_at`

// CreateRecord inserts the record and returns it with the id and the
// database-assigned created_at filled in.
func (s *Store) CreateRecord(ctx context.Context, record Record) (Record, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	entriesJSON, err := json.Marshal(record.PaymentEntries)
	if err != nil {
		return Record{}, err
	}
	deductionsJSON, err := json.Marshal(record.Deductions)
	if err != nil {
		return Record{}, err
	}
	var childID any
	if record.ChildProfileID != "" {
		childID = record.ChildProfileID
	}
	err = s.DB.QueryRow(ctx, `
    INSERT INTO payslips (
      id, owner_id, child_profile_id, employee_name, company_name,
      payroll_number, pay_period_start, pay_period_end, period,
      gross_salary, total_deductions, net_salary, currency,
      payment_entries, deductions
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    RETURNING created_at
  `, record.ID, record.OwnerID, childID, record.EmployeeName, record.CompanyName,
		record.PayrollNumber, record.PayPeriodStart, record.PayPeriodEnd, record.Period,
		record.GrossSalary, record.TotalDeductions, record.NetSalary, record.Currency,
		entriesJSON, deductionsJSON).Scan(&record.CreatedAt)
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

func (s *Store) GetRecord(ctx context.Context, ownerID, id string) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM payslips
    WHERE owner_id = $1 AND id = $2
  `, ownerID, id)
	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	return record, err
}

func (s *Store) CountRecords(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payslips WHERE owner_id = $1", ownerID).Scan(&count)
	return count, err
}

func (s *Store) ListRecords(ctx context.Context, ownerID string, limit, offset int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM payslips
    WHERE owner_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *Store) ListRecordsForEmployee(ctx context.Context, ownerID, employeeName string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM payslips
    WHERE owner_id = $1 AND employee_name = $2
  `, ownerID, employeeName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *Store) ListRecordsByIDs(ctx context.Context, ownerID string, ids []string) ([]Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM payslips
    WHERE owner_id = $1 AND id = ANY($2)
  `, ownerID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// UpdateRecord patches presentation fields only; finalized totals are
// immutable once saved.
func (s *Store) UpdateRecord(ctx context.Context, ownerID, id string, patch RecordPatch) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payslips SET
      employee_name = COALESCE($3, employee_name),
      company_name = COALESCE($4, company_name),
      payroll_number = COALESCE($5, payroll_number),
      currency = COALESCE($6, currency)
    WHERE owner_id = $1 AND id = $2
  `, ownerID, id, patch.EmployeeName, patch.CompanyName, patch.PayrollNumber, patch.Currency)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, ownerID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM payslips WHERE owner_id = $1 AND id = $2", ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row) (Record, error) {
	var record Record
	var entriesJSON, deductionsJSON []byte
	err := row.Scan(
		&record.ID, &record.OwnerID, &record.ChildProfileID, &record.EmployeeName, &record.CompanyName,
		&record.PayrollNumber, &record.PayPeriodStart, &record.PayPeriodEnd, &record.Period,
		&record.GrossSalary, &record.TotalDeductions, &record.NetSalary, &record.Currency,
		&entriesJSON, &deductionsJSON, &record.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	if len(entriesJSON) > 0 {
		if err := json.Unmarshal(entriesJSON, &record.PaymentEntries); err != nil {
			return Record{}, err
		}
	}
	if len(deductionsJSON) > 0 {
		if err := json.Unmarshal(deductionsJSON, &record.Deductions); err != nil {
			return Record{}, err
		}
	}
	return record, nil
}
