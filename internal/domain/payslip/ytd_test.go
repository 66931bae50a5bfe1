package payslip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func historicalRecord(id string, gross, deductions, net float64) Record {
	return Record{
		ID:              id,
		GrossSalary:     gross,
		TotalDeductions: deductions,
		NetSalary:       net,
	}
}

func TestContributionSetAddRejectsDuplicates(t *testing.T) {
	set := NewContributionSet()
	record := historicalRecord("r1", 900, 180, 720)

	require.NoError(t, set.Add(record))
	require.ErrorIs(t, set.Add(record), ErrDuplicateContribution)
	require.Equal(t, 1, set.Len())
}

func TestContributionSetRemoveIsIdempotent(t *testing.T) {
	set := NewContributionSet()
	require.NoError(t, set.Add(historicalRecord("r1", 900, 180, 720)))

	set.Remove("missing")
	require.Equal(t, 1, set.Len())

	set.Remove("r1")
	require.Equal(t, 0, set.Len())
	set.Remove("r1")
	require.Equal(t, 0, set.Len())
}

func TestContributionSetClear(t *testing.T) {
	set := NewContributionSet()
	require.NoError(t, set.Add(historicalRecord("r1", 900, 180, 720)))
	require.NoError(t, set.Add(historicalRecord("r2", 100, 20, 80)))

	set.Clear()
	require.Equal(t, 0, set.Len())
	require.Equal(t, Figures{}, set.Totals())
}

func TestContributionSetTotalsIsAFreshFold(t *testing.T) {
	set := NewContributionSet()
	require.NoError(t, set.Add(historicalRecord("r1", 900, 180, 720)))
	require.NoError(t, set.Add(historicalRecord("r2", 100, 20, 80)))

	require.Equal(t, Figures{GrossPay: 1000, TotalDeductions: 200, NetPay: 800}, set.Totals())

	set.Remove("r2")
	require.Equal(t, Figures{GrossPay: 900, TotalDeductions: 180, NetPay: 720}, set.Totals())
}

func TestAutomaticYTDUsesPeriodNumber(t *testing.T) {
	ytd := AutomaticYTD(Figures{GrossPay: 500}, "2025-03")
	require.Equal(t, float64(1500), ytd.GrossPay)
	require.Equal(t, float64(0), ytd.TotalDeductions)
}

func TestComputeYTDAutomaticOnly(t *testing.T) {
	current := Figures{GrossPay: 500, TotalDeductions: 100, NetPay: 400}

	ytd := ComputeYTD(current, "2025-03", nil, NewContributionSet())
	require.Equal(t, Figures{GrossPay: 1500, TotalDeductions: 300, NetPay: 1200}, ytd)
}

func TestComputeYTDOverrideReplacesAutomaticTermOnly(t *testing.T) {
	current := Figures{GrossPay: 500, TotalDeductions: 100, NetPay: 400}
	override := &Figures{GrossPay: 1000, TotalDeductions: 200, NetPay: 800}

	set := NewContributionSet()
	require.NoError(t, set.Add(historicalRecord("r1", 900, 180, 720)))

	ytd := ComputeYTD(current, "2025-03", override, set)
	require.Equal(t, Figures{GrossPay: 1900, TotalDeductions: 380, NetPay: 1520}, ytd)
}

func TestComputeYTDAdditivity(t *testing.T) {
	current := Figures{GrossPay: 250.50, TotalDeductions: 50.10, NetPay: 200.40}
	set := NewContributionSet()
	require.NoError(t, set.Add(historicalRecord("r1", 900, 180, 720)))
	require.NoError(t, set.Add(historicalRecord("r2", 100, 20, 80)))

	auto := AutomaticYTD(current, "2025-06")
	totals := set.Totals()
	ytd := ComputeYTD(current, "2025-06", nil, set)

	require.InDelta(t, auto.GrossPay+totals.GrossPay, ytd.GrossPay, 1e-9)
	require.InDelta(t, auto.TotalDeductions+totals.TotalDeductions, ytd.TotalDeductions, 1e-9)
	require.InDelta(t, auto.NetPay+totals.NetPay, ytd.NetPay, 1e-9)
}

func TestComputeYTDNilSet(t *testing.T) {
	ytd := ComputeYTD(Figures{GrossPay: 100}, "2025-02", nil, nil)
	require.Equal(t, float64(200), ytd.GrossPay)
}

func TestSeedOverrideCopiesCurrentFigures(t *testing.T) {
	current := Figures{GrossPay: 1000, TotalDeductions: 200, NetPay: 800}

	seeded := SeedOverride(current)
	require.Equal(t, current, *seeded)

	seeded.GrossPay = 1
	require.Equal(t, float64(1000), current.GrossPay)
}
