package rules

import (
	"testing"
	"time"

	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func datePtr(value string) *time.Time {
	d := date(value)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func TestCheckAssignmentDates(t *testing.T) {
	tests := []struct {
		name         string
		assigned     time.Time
		expected     *time.Time
		expectErr    bool
	}{
		{
			name:     "no expected return date",
			assigned: date("2026-01-10"),
		},
		{
			name:     "return after assignment",
			assigned: date("2026-01-10"),
			expected: datePtr("2026-02-01"),
		},
		{
			name:     "return same day",
			assigned: date("2026-01-10"),
			expected: datePtr("2026-01-10"),
		},
		{
			name:      "return before assignment",
			assigned:  date("2026-01-10"),
			expected:  datePtr("2026-01-09"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAssignmentDates(tt.assigned, tt.expected)
			if tt.expectErr {
				assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckLicenseTarget(t *testing.T) {
	tests := []struct {
		name      string
		assetID   *int
		userID    *int
		expectErr bool
	}{
		{name: "asset only", assetID: intPtr(1)},
		{name: "user only", userID: intPtr(2)},
		{name: "both set", assetID: intPtr(1), userID: intPtr(2), expectErr: true},
		{name: "neither set", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLicenseTarget(tt.assetID, tt.userID)
			if tt.expectErr {
				assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckSeatCapacity(t *testing.T) {
	assert.NoError(t, CheckSeatCapacity(0, 1))
	assert.NoError(t, CheckSeatCapacity(4, 5))

	err := CheckSeatCapacity(5, 5)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCapacity))

	err = CheckSeatCapacity(6, 5)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCapacity))
}

func TestApplyStockAdjustment(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		quantity     int
		operation    string
		expectedNext int
		expectedKind apperrors.Kind
	}{
		{name: "add", current: 3, quantity: 2, operation: models.StockAdd, expectedNext: 5},
		{name: "subtract to zero", current: 2, quantity: 2, operation: models.StockSubtract, expectedNext: 0},
		{name: "subtract past zero", current: 1, quantity: 2, operation: models.StockSubtract, expectedKind: apperrors.KindCapacity},
		{name: "zero quantity", current: 1, quantity: 0, operation: models.StockAdd, expectedKind: apperrors.KindValidation},
		{name: "negative quantity", current: 1, quantity: -4, operation: models.StockAdd, expectedKind: apperrors.KindValidation},
		{name: "unknown operation", current: 1, quantity: 1, operation: "set", expectedKind: apperrors.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := ApplyStockAdjustment(tt.current, tt.quantity, tt.operation)
			if tt.expectedKind != "" {
				assert.True(t, apperrors.IsKind(err, tt.expectedKind))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedNext, next)
		})
	}
}

func TestCheckMaintenanceDates(t *testing.T) {
	assert.NoError(t, CheckMaintenanceDates(nil, nil))
	assert.NoError(t, CheckMaintenanceDates(datePtr("2026-03-01"), nil))
	assert.NoError(t, CheckMaintenanceDates(nil, datePtr("2026-03-01")))
	assert.NoError(t, CheckMaintenanceDates(datePtr("2026-03-01"), datePtr("2026-03-01")))

	err := CheckMaintenanceDates(datePtr("2026-03-02"), datePtr("2026-03-01"))
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCheckMaintenancePlannedDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	assert.NoError(t, CheckMaintenancePlannedDate(date("2026-08-28"), models.MaintenanceScheduled, now))
	assert.NoError(t, CheckMaintenancePlannedDate(date("2026-09-15"), models.MaintenanceScheduled, now))

	err := CheckMaintenancePlannedDate(date("2026-08-27"), models.MaintenanceScheduled, now)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	// Completed orders keep whatever date they ran on.
	assert.NoError(t, CheckMaintenancePlannedDate(date("2020-01-01"), models.MaintenanceCompleted, now))
}

func TestCheckCategoryCycle(t *testing.T) {
	// 1 <- 2 <- 3
	parents := map[int]*int{
		1: nil,
		2: intPtr(1),
		3: intPtr(2),
	}
	parentOf := func(id int) (*int, error) {
		return parents[id], nil
	}

	t.Run("self parent", func(t *testing.T) {
		err := CheckCategoryCycle(3, 3, parentOf)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("reparent to sibling chain", func(t *testing.T) {
		assert.NoError(t, CheckCategoryCycle(3, 1, parentOf))
	})

	t.Run("parent to own descendant", func(t *testing.T) {
		err := CheckCategoryCycle(1, 3, parentOf)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("two node cycle", func(t *testing.T) {
		err := CheckCategoryCycle(2, 3, parentOf)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("unbounded chain", func(t *testing.T) {
		selfLoop := intPtr(99)
		err := CheckCategoryCycle(1, 99, func(id int) (*int, error) {
			return selfLoop, nil
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("assigned_date", "2026-05-01")
	assert.NoError(t, err)
	assert.Equal(t, date("2026-05-01"), parsed)

	_, err = ParseDate("assigned_date", "01/05/2026")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestParseOptionalDate(t *testing.T) {
	parsed, err := ParseOptionalDate("end_date", nil)
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	empty := ""
	parsed, err = ParseOptionalDate("end_date", &empty)
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	valid := "2026-05-01"
	parsed, err = ParseOptionalDate("end_date", &valid)
	assert.NoError(t, err)
	assert.Equal(t, date("2026-05-01"), *parsed)

	invalid := "not-a-date"
	_, err = ParseOptionalDate("end_date", &invalid)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
