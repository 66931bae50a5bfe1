package payslip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	records map[string]Record
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]Record)}
}

func (f *fakeStore) CreateRecord(_ context.Context, record Record) (Record, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now()
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeStore) GetRecord(_ context.Context, ownerID, id string) (Record, error) {
	record, ok := f.records[id]
	if !ok || record.OwnerID != ownerID {
		return Record{}, ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeStore) CountRecords(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, record := range f.records {
		if record.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) ListRecords(_ context.Context, ownerID string, limit, offset int) ([]Record, error) {
	var out []Record
	for _, record := range f.records {
		if record.OwnerID == ownerID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStore) ListRecordsForEmployee(_ context.Context, ownerID, employeeName string) ([]Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Record
	for _, record := range f.records {
		if record.OwnerID == ownerID && record.EmployeeName == employeeName {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStore) ListRecordsByIDs(_ context.Context, ownerID string, ids []string) ([]Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Record
	for _, id := range ids {
		if record, ok := f.records[id]; ok && record.OwnerID == ownerID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateRecord(_ context.Context, ownerID, id string, patch RecordPatch) error {
	record, ok := f.records[id]
	if !ok || record.OwnerID != ownerID {
		return ErrRecordNotFound
	}
	if patch.EmployeeName != nil {
		record.EmployeeName = *patch.EmployeeName
	}
	if patch.Currency != nil {
		record.Currency = *patch.Currency
	}
	f.records[id] = record
	return nil
}

func (f *fakeStore) DeleteRecord(_ context.Context, ownerID, id string) error {
	record, ok := f.records[id]
	if !ok || record.OwnerID != ownerID {
		return ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func TestServiceSaveValidatesBeforeStore(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	data := &Data{
		EmployeeName:   "Jane",
		CompanyName:    "Acme",
		PayPeriodStart: time.Now().AddDate(0, 0, 9),
		PayPeriodEnd:   time.Now(),
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 3000}},
	}

	_, err := svc.Save(context.Background(), "owner-1", "", "£", data)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Empty(t, store.records, "invalid draft must never reach the store")
}

func TestServiceSavePersistsComputedTotals(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	start := time.Now().AddDate(0, 0, -20)
	data := &Data{
		EmployeeName:   "Jane",
		CompanyName:    "Acme",
		PayPeriodStart: start,
		PayPeriodEnd:   time.Now().AddDate(0, 0, 7),
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 3000}},
	}
	data.Deductions = []Deduction{NewDeduction(DeductionInput{Name: "Tax", Kind: DeductionKindPercentage, Value: 20}, 3000)}

	record, err := svc.Save(context.Background(), "owner-1", "", "£", data)
	require.NoError(t, err)
	require.Equal(t, float64(3000), record.GrossSalary)
	require.InDelta(t, 600, record.TotalDeductions, 1e-9)
	require.InDelta(t, 2400, record.NetSalary, 1e-9)
	require.Equal(t, PeriodKey(start), record.Period)
	require.Len(t, store.records, 1)
}

func TestServiceSaveReturnsStoredTimestamp(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	data := &Data{
		EmployeeName:   "Jane",
		CompanyName:    "Acme",
		PayPeriodStart: time.Now().AddDate(0, 0, -20),
		PayPeriodEnd:   time.Now(),
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 3000}},
	}

	record, err := svc.Save(context.Background(), "owner-1", "", "£", data)
	require.NoError(t, err)
	require.False(t, record.CreatedAt.IsZero())
	// The returned record carries the store's timestamp, not a second clock read.
	require.Equal(t, store.records[record.ID].CreatedAt, record.CreatedAt)
}

func TestServicePreviewFoldsSelectedHistory(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	store.records["r1"] = Record{ID: "r1", OwnerID: "owner-1", GrossSalary: 900, TotalDeductions: 180, NetSalary: 720}

	data := &Data{
		Period:         "2025-03",
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 500}},
	}

	result, err := svc.Preview(context.Background(), "owner-1", data, []string{"r1", "r1", "missing"})
	require.NoError(t, err)
	require.Equal(t, float64(500), result.Current.GrossPay)
	// 500 * 3 automatic + 900 historical.
	require.Equal(t, float64(2400), result.YTD.GrossPay)
	require.Len(t, result.Contributions, 1)
	require.Equal(t, []string{"r1"}, result.Duplicates)
}

func TestServicePreviewWithOverride(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	store.records["r1"] = Record{ID: "r1", OwnerID: "owner-1", GrossSalary: 900, TotalDeductions: 180, NetSalary: 720}

	data := &Data{
		Period:         "2025-03",
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 500}},
		YTDOverride:    &Figures{GrossPay: 1000, TotalDeductions: 200, NetPay: 800},
	}

	result, err := svc.Preview(context.Background(), "owner-1", data, []string{"r1"})
	require.NoError(t, err)
	require.Equal(t, Figures{GrossPay: 1900, TotalDeductions: 380, NetPay: 1520}, result.YTD)
}

func TestServicePreviewIgnoresOtherOwnersRecords(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	store.records["r1"] = Record{ID: "r1", OwnerID: "someone-else", GrossSalary: 900}

	data := &Data{
		Period:         "2025-01",
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 500}},
	}

	result, err := svc.Preview(context.Background(), "owner-1", data, []string{"r1"})
	require.NoError(t, err)
	require.Empty(t, result.Contributions)
	require.Equal(t, float64(500), result.YTD.GrossPay)
}

func TestServiceHistorySortsNewestFirst(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	store.records["old"] = Record{ID: "old", OwnerID: "owner-1", EmployeeName: "Jane", PayPeriodStart: date(2025, time.January, 1)}
	store.records["new"] = Record{ID: "new", OwnerID: "owner-1", EmployeeName: "Jane", PayPeriodStart: date(2025, time.May, 1)}
	store.records["mid"] = Record{ID: "mid", OwnerID: "owner-1", EmployeeName: "Jane", PayPeriodStart: date(2025, time.March, 1)}

	records, err := svc.History(context.Background(), "owner-1", "Jane")
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "new", records[0].ID)
	require.Equal(t, "mid", records[1].ID)
	require.Equal(t, "old", records[2].ID)
}

func TestServiceHistoryPropagatesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")
	svc := NewService(store)

	_, err := svc.History(context.Background(), "owner-1", "Jane")
	require.Error(t, err)
}

func TestDraftRebuildFreezesDeductions(t *testing.T) {
	record := Record{
		EmployeeName: "Jane",
		GrossSalary:  3000,
		Deductions:   []DeductionRecord{{ID: "d1", Name: "Tax", Amount: 600}},
	}

	draft := Draft(record)
	require.Len(t, draft.Deductions, 1)
	require.Equal(t, DeductionKindFixed, draft.Deductions[0].Kind)
	require.Equal(t, float64(600), draft.Deductions[0].Amount)
}
