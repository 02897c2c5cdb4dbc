package interaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/entities"
	"github.com/gigmarket/billing-service/internal/money"
)

const daysPerWeek = 7

// ValidateContractInput checks a candidate contract against the business
// rules before it may be persisted. The first violated rule wins; the
// returned error is a BadRequest carrying the violated rule as its details.
func ValidateContractInput(contract *entities.Contract) error {
	return validateContractInput(contract, time.Now())
}

// validateContractInput is deterministic for a fixed (contract, now) pair.
// Date-of-day rules compare calendar dates; the expiry rule compares the
// end date against the current instant.
func validateContractInput(c *entities.Contract, now time.Time) error {
	if c.ContractorID == c.ClientID {
		return apierrors.NewBadRequest("The contractor and client cannot be the same person")
	}

	if c.EndDate.Before(now) {
		return apierrors.NewBadRequest("The contract is expired")
	}

	if startOfDay(now).After(startOfDay(c.StartDate)) {
		return apierrors.NewBadRequest("The contract is starting in the past")
	}

	if c.StartDate.After(c.EndDate) {
		return apierrors.NewBadRequest("The contract is starting after it ends")
	}

	if c.HoursPerWeek.Valid && !c.HourlyRate.Valid {
		return apierrors.NewBadRequest("The contract is missing an hourly rate")
	}

	if c.TotalHours.Valid && !c.HourlyRate.Valid {
		return apierrors.NewBadRequest("The contract is missing an hourly rate")
	}

	if c.HoursPerWeek.Valid && !c.TotalHours.Valid {
		return apierrors.NewBadRequest("The contract is missing total hours")
	}

	if c.HoursPerWeek.Valid && !isWholeWeeks(c.StartDate, c.EndDate) {
		return apierrors.NewBadRequest("The contract duration is not a whole number of weeks and this is required when hours per week is set")
	}

	if c.HoursPerWeek.Valid && c.TotalHours.Valid {
		expectedHours := weeksBetweenDates(c.StartDate, c.EndDate) * c.HoursPerWeek.Int64
		if c.TotalHours.Int64 != expectedHours {
			return apierrors.NewBadRequest("The contract total hours does not match the calculated total hours from hours per week and the duration of the contract")
		}
	}

	if !money.IsValidAmount(c.TotalCost) {
		return apierrors.NewBadRequest("The contract total cost has the wrong format")
	}

	if c.HourlyRate.Valid && c.TotalHours.Valid {
		expectedCost := money.ParseOrZero(c.HourlyRate.String).Mul(decimal.NewFromInt(c.TotalHours.Int64))
		if !money.ParseOrZero(c.TotalCost).Equal(expectedCost) {
			return apierrors.NewBadRequest("The contract total cost does not match the calculated total cost from hours and hourly rate")
		}
	}

	return nil
}

// weeksBetweenDates returns the number of whole weeks between the calendar
// dates of start and end.
func weeksBetweenDates(start time.Time, end time.Time) int64 {
	return daysBetweenDates(start, end) / daysPerWeek
}

// isWholeWeeks reports whether the calendar-date span from start to end is
// an exact multiple of seven days.
func isWholeWeeks(start time.Time, end time.Time) bool {
	return daysBetweenDates(start, end)%daysPerWeek == 0
}

func daysBetweenDates(start time.Time, end time.Time) int64 {
	return int64(startOfDay(end).Sub(startOfDay(start)).Hours() / 24)
}

// startOfDay projects the calendar date of t into UTC, so that date
// comparisons and day arithmetic are independent of the wall clock location
// the inputs were constructed in.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
