package payslip

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordWireFormatUsesSnakeCase(t *testing.T) {
	payload, err := json.Marshal(Record{OwnerID: "o1", ChildProfileID: "c1", EmployeeName: "Jane"})
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(payload, &keys))
	require.Contains(t, keys, "owner_id")
	require.Contains(t, keys, "child_profile_id")
	require.Contains(t, keys, "employee_name")
	require.NotContains(t, keys, "ownerId")
	require.NotContains(t, keys, "childProfileId")
}
