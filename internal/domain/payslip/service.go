package payslip

import (
	"context"
	"sort"
	"time"
)

// Service runs draft computation and the save path over a record store. The
// calculators themselves never touch the store; it is only consulted to load
// historical records for year-to-date selection and to persist finalized
// payslips.
type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// PreviewResult carries everything the rendering surface needs for one
// draft: the current-period figures, the combined year-to-date figures, and
// the historical contributions that went into them.
type PreviewResult struct {
	Current       Figures        `json:"current"`
	YTD           Figures        `json:"ytd"`
	Period        string         `json:"period"`
	Contributions []Contribution `json:"contributions"`
	Duplicates    []string       `json:"duplicates,omitempty"`
}

// Preview computes a draft without persisting anything. Selected historical
// records are loaded by id and folded into the year-to-date figures;
// duplicate selections are reported back rather than failing the preview.
func (s *Service) Preview(ctx context.Context, ownerID string, data *Data, ytdRecordIDs []string) (PreviewResult, error) {
	current := CurrentFigures(data)
	if data.Period == "" && !data.PayPeriodStart.IsZero() {
		data.Period = PeriodKey(data.PayPeriodStart)
	}

	set := NewContributionSet()
	var duplicates []string
	if len(ytdRecordIDs) > 0 {
		records, err := s.store.ListRecordsByIDs(ctx, ownerID, ytdRecordIDs)
		if err != nil {
			return PreviewResult{}, err
		}
		byID := make(map[string]Record, len(records))
		for _, record := range records {
			byID[record.ID] = record
		}
		for _, id := range ytdRecordIDs {
			record, ok := byID[id]
			if !ok {
				continue
			}
			if err := set.Add(record); err != nil {
				duplicates = append(duplicates, id)
			}
		}
	}

	return PreviewResult{
		Current:       current,
		YTD:           ComputeYTD(current, data.Period, data.YTDOverride, set),
		Period:        data.Period,
		Contributions: set.Contributions(),
		Duplicates:    duplicates,
	}, nil
}

// Save validates the draft and persists it as an immutable record. A draft
// that fails validation never reaches the store.
func (s *Service) Save(ctx context.Context, ownerID, childProfileID, currency string, data *Data) (Record, error) {
	if err := Validate(data, time.Now()); err != nil {
		return Record{}, err
	}
	current := CurrentFigures(data)
	record := Record{
		OwnerID:         ownerID,
		ChildProfileID:  childProfileID,
		EmployeeName:    data.EmployeeName,
		CompanyName:     data.CompanyName,
		PayrollNumber:   data.PayrollNumber,
		PayPeriodStart:  data.PayPeriodStart,
		PayPeriodEnd:    data.PayPeriodEnd,
		Period:          PeriodKey(data.PayPeriodStart),
		GrossSalary:     current.GrossPay,
		TotalDeductions: current.TotalDeductions,
		NetSalary:       current.NetPay,
		Currency:        currency,
		PaymentEntries:  data.PaymentEntries,
		Deductions:      finalizeDeductions(data.Deductions),
	}
	return s.store.CreateRecord(ctx, record)
}

// History lists an employee's saved payslips as year-to-date candidates,
// newest pay period first. The store makes no ordering promise, so the sort
// happens here.
func (s *Service) History(ctx context.Context, ownerID, employeeName string) ([]Record, error) {
	records, err := s.store.ListRecordsForEmployee(ctx, ownerID, employeeName)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PayPeriodStart.After(records[j].PayPeriodStart)
	})
	return records, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Record, error) {
	return s.store.GetRecord(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Record, int, error) {
	total, err := s.store.CountRecords(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	records, err := s.store.ListRecords(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id string, patch RecordPatch) error {
	return s.store.UpdateRecord(ctx, ownerID, id, patch)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.DeleteRecord(ctx, ownerID, id)
}

// Draft rebuilds an editable draft from a saved record. Frozen deduction
// amounts are carried over as fixed rules so reloading never reprices them.
func Draft(record Record) *Data {
	deductions := make([]Deduction, 0, len(record.Deductions))
	for _, d := range record.Deductions {
		deductions = append(deductions, Deduction{
			ID:     d.ID,
			Name:   d.Name,
			Kind:   DeductionKindFixed,
			Value:  d.Amount,
			Amount: d.Amount,
		})
	}
	return &Data{
		EmployeeName:   record.EmployeeName,
		PayrollNumber:  record.PayrollNumber,
		CompanyName:    record.CompanyName,
		PayPeriodStart: record.PayPeriodStart,
		PayPeriodEnd:   record.PayPeriodEnd,
		Period:         record.Period,
		PaymentEntries: record.PaymentEntries,
		GrossPay:       record.GrossSalary,
		Deductions:     deductions,
	}
}

func finalizeDeductions(deductions []Deduction) []DeductionRecord {
	out := make([]DeductionRecord, 0, len(deductions))
	for _, d := range deductions {
		out = append(out, DeductionRecord{ID: d.ID, Name: d.Name, Amount: d.Amount})
	}
	return out
}
