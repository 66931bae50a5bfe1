package payslip

import "context"

// StoreAPI is the persistence surface the service depends on. The store
// makes no ordering promises on list calls; callers sort when order matters.
type StoreAPI interface {
	CreateRecord(ctx context.Context, record Record) (Record, error)
	GetRecord(ctx context.Context, ownerID, id string) (Record, error)
	CountRecords(ctx context.Context, ownerID string) (int, error)
	ListRecords(ctx context.Context, ownerID string, limit, offset int) ([]Record, error)
	ListRecordsForEmployee(ctx context.Context, ownerID, employeeName string) ([]Record, error)
	ListRecordsByIDs(ctx context.Context, ownerID string, ids []string) ([]Record, error)
	UpdateRecord(ctx context.Context, ownerID, id string, patch RecordPatch) error
	DeleteRecord(ctx context.Context, ownerID, id string) error
}
