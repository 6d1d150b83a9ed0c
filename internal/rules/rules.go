// Package rules holds the cross-field invariant checks evaluated before a
// write reaches storage. Cross-entity checks that need current state run in
// the owning service under a row lock; everything here is pure.
package rules

import (
	"time"

	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"
)

// CheckAssignmentDates rejects an expected return date before the
// assignment date.
func CheckAssignmentDates(assignedDate time.Time, expectedReturnDate *time.Time) error {
	if expectedReturnDate != nil && expectedReturnDate.Before(assignedDate) {
		return apperrors.Validation("expected_return_date must be on or after assigned_date")
	}
	return nil
}

// CheckLicenseTarget enforces that a license assignment targets exactly one
// of asset / user.
func CheckLicenseTarget(assetID, userID *int) error {
	if (assetID == nil) == (userID == nil) {
		return apperrors.Validation("license must be assigned to exactly one of asset_id or user_id")
	}
	return nil
}

// CheckSeatCapacity rejects seat consumption on a fully allocated license.
func CheckSeatCapacity(seatsUsed, seatsTotal int) error {
	if seatsUsed >= seatsTotal {
		return apperrors.Capacity("no seats available: %d of %d in use", seatsUsed, seatsTotal)
	}
	return nil
}

// ApplyStockAdjustment computes the stock level after a relative adjustment,
// rejecting unknown operations and negative results.
func ApplyStockAdjustment(current, quantity int, operation string) (int, error) {
	if quantity <= 0 {
		return 0, apperrors.Validation("quantity must be positive")
	}

	var next int
	switch operation {
	case models.StockAdd:
		next = current + quantity
	case models.StockSubtract:
		next = current - quantity
	default:
		return 0, apperrors.Validation("operation must be %q or %q", models.StockAdd, models.StockSubtract)
	}

	if next < 0 {
		return 0, apperrors.Capacity("insufficient stock: %d available, %d requested", current, quantity)
	}

	return next, nil
}

// CheckMaintenanceDates rejects an end date before the start date.
func CheckMaintenanceDates(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return apperrors.Validation("end_date must be on or after start_date")
	}
	return nil
}

// CheckMaintenancePlannedDate rejects past planned dates unless the order is
// already completed. Comparison is at day granularity.
func CheckMaintenancePlannedDate(plannedDate time.Time, status models.MaintenanceStatus, now time.Time) error {
	if status == models.MaintenanceCompleted {
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	planned := time.Date(plannedDate.Year(), plannedDate.Month(), plannedDate.Day(), 0, 0, 0, 0, now.Location())
	if planned.Before(today) {
		return apperrors.Validation("planned_date must not be in the past unless the order is completed")
	}
	return nil
}

// CheckCategoryCycle walks the ancestor chain of a proposed parent and
// rejects a parent assignment that would close a cycle. parentOf resolves a
// category id to its current parent id (nil at a root).
func CheckCategoryCycle(categoryID int, newParentID int, parentOf func(id int) (*int, error)) error {
	if categoryID == newParentID {
		return apperrors.Validation("category cannot be its own parent")
	}

	current := newParentID
	// Bounded walk: a well-formed tree terminates at a root, and a cycle is
	// detected as soon as the chain reaches the category being updated.
	for depth := 0; depth < 100; depth++ {
		parent, err := parentOf(current)
		if err != nil {
			return err
		}
		if parent == nil {
			return nil
		}
		if *parent == categoryID {
			return apperrors.Validation("category parent change would create a cycle")
		}
		current = *parent
	}

	return apperrors.Validation("category tree too deep, possible cycle")
}

// ParseDate parses a yyyy-mm-dd request field.
func ParseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.Validation("%s must be a yyyy-mm-dd date", field)
	}
	return parsed, nil
}

// ParseOptionalDate parses a nullable yyyy-mm-dd request field.
func ParseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
