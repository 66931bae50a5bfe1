package payslip

const (
	EntryKindFixed    = "fixed"
	EntryKindHourly   = "hourly"
	EntryKindOvertime = "overtime"
	EntryKindBonus    = "bonus"

	DeductionKindPercentage = "percentage"
	DeductionKindFixed      = "fixed"

	FrequencyWeekly    = "weekly"
	FrequencyBiWeekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyCustom    = "custom"

	PresetLastWeek      = "lastWeek"
	PresetThisMonth     = "thisMonth"
	PresetLastMonth     = "lastMonth"
	PresetCustomQuarter = "customQuarter"
)

// MaxDeductionAmount is the upper bound accepted for a single deduction.
const MaxDeductionAmount = 999_999_999.99

// MaxDeductionNameLen bounds deduction labels on the rendered document.
const MaxDeductionNameLen = 50
