package shared

import (
	"net/http"

	"slipgen/internal/domain/payslip"
	"slipgen/internal/transport/http/api"
)

// FailValidation maps a domain ValidationError onto the API envelope so the
// client can show every violated rule at once.
func FailValidation(w http.ResponseWriter, requestID string, verr *payslip.ValidationError) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payslip validation failed",
		map[string]any{"fields": verr.Issues},
		requestID,
	)
}
