package interaction

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gigmarket/billing-service/internal/apierrors"
	"github.com/gigmarket/billing-service/internal/entities"
)

// fixedNow is mid-afternoon, so "end date today" is already in the past
// while "end date tomorrow" is not.
var fixedNow = time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC)

func newContractInput(build func(c *entities.Contract)) *entities.Contract {
	c := &entities.Contract{
		Name:         "Test Contract",
		Terms:        "Test Terms",
		ClientID:     1,
		ContractorID: 2,
		JobID:        1,
		StartDate:    startOfDay(fixedNow),
		EndDate:      startOfDay(fixedNow).AddDate(0, 0, 7),
		TotalCost:    "1000",
		Status:       entities.ContractStatusPending,
	}

	if build != nil {
		build(c)
	}

	return c
}

func withHourlyBilling(rate string, hoursPerWeek, totalHours int64) func(c *entities.Contract) {
	return func(c *entities.Contract) {
		if rate != "" {
			c.HourlyRate = sql.NullString{String: rate, Valid: true}
		}
		if hoursPerWeek > 0 {
			c.HoursPerWeek = sql.NullInt64{Int64: hoursPerWeek, Valid: true}
		}
		if totalHours > 0 {
			c.TotalHours = sql.NullInt64{Int64: totalHours, Valid: true}
		}
	}
}

func TestValidateContractInput(t *testing.T) {
	tests := []struct {
		name        string
		contract    *entities.Contract
		expectedErr string
	}{
		{
			name: "should accept a fixed price contract ending tomorrow",
			contract: newContractInput(func(c *entities.Contract) {
				c.EndDate = startOfDay(fixedNow).AddDate(0, 0, 1)
			}),
		},
		{
			name: "should accept an hourly contract over one whole week",
			contract: newContractInput(func(c *entities.Contract) {
				withHourlyBilling("100", 40, 40)(c)
				c.TotalCost = "4000"
			}),
		},
		{
			name: "should accept a currency symbol in the total cost",
			contract: newContractInput(func(c *entities.Contract) {
				withHourlyBilling("100", 40, 40)(c)
				c.TotalCost = "$4000"
			}),
		},
		{
			name: "should reject when the contractor and client are the same person",
			contract: newContractInput(func(c *entities.Contract) {
				c.ContractorID = 1
				c.ClientID = 1
			}),
			expectedErr: "The contractor and client cannot be the same person",
		},
		{
			name: "should reject an expired contract",
			contract: newContractInput(func(c *entities.Contract) {
				c.EndDate = startOfDay(fixedNow)
			}),
			expectedErr: "The contract is expired",
		},
		{
			name: "should reject a contract starting in the past",
			contract: newContractInput(func(c *entities.Contract) {
				c.StartDate = startOfDay(fixedNow).AddDate(0, 0, -1)
				c.EndDate = startOfDay(fixedNow).AddDate(0, 0, 1)
			}),
			expectedErr: "The contract is starting in the past",
		},
		{
			name: "should reject a contract starting after it ends",
			contract: newContractInput(func(c *entities.Contract) {
				c.StartDate = startOfDay(fixedNow).AddDate(0, 0, 3)
				c.EndDate = startOfDay(fixedNow).AddDate(0, 0, 1)
			}),
			expectedErr: "The contract is starting after it ends",
		},
		{
			name:        "should reject a missing hourly rate when hours per week is set",
			contract:    newContractInput(withHourlyBilling("", 40, 40)),
			expectedErr: "The contract is missing an hourly rate",
		},
		{
			name:        "should reject a missing hourly rate when total hours is set",
			contract:    newContractInput(withHourlyBilling("", 0, 40)),
			expectedErr: "The contract is missing an hourly rate",
		},
		{
			name:        "should reject missing total hours when hours per week is set",
			contract:    newContractInput(withHourlyBilling("100", 40, 0)),
			expectedErr: "The contract is missing total hours",
		},
		{
			name: "should reject a duration that is not a whole number of weeks",
			contract: newContractInput(func(c *entities.Contract) {
				withHourlyBilling("100", 40, 40)(c)
				c.EndDate = startOfDay(fixedNow).AddDate(0, 0, 8)
			}),
			expectedErr: "The contract duration is not a whole number of weeks and this is required when hours per week is set",
		},
		{
			name: "should reject total hours not matching hours per week and duration",
			contract: newContractInput(func(c *entities.Contract) {
				withHourlyBilling("100", 40, 80)(c)
				c.EndDate = startOfDay(fixedNow).AddDate(0, 0, 28)
			}),
			expectedErr: "The contract total hours does not match the calculated total hours from hours per week and the duration of the contract",
		},
		{
			name: "should reject a malformed total cost",
			contract: newContractInput(func(c *entities.Contract) {
				c.TotalCost = "1000.00.1231"
			}),
			expectedErr: "The contract total cost has the wrong format",
		},
		{
			name: "should reject total cost not matching hours and hourly rate",
			contract: newContractInput(func(c *entities.Contract) {
				withHourlyBilling("100", 0, 10)(c)
				c.TotalCost = "900"
			}),
			expectedErr: "The contract total cost does not match the calculated total cost from hours and hourly rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContractInput(tt.contract, fixedNow)
			if tt.expectedErr != "" {
				require.EqualError(t, err, tt.expectedErr)
				require.True(t, apierrors.IsBadRequestError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateContractInputFirstRuleWins(t *testing.T) {
	// violates both the same-person rule and the expiry rule
	contract := newContractInput(func(c *entities.Contract) {
		c.ContractorID = 1
		c.ClientID = 1
		c.EndDate = startOfDay(fixedNow).AddDate(0, 0, -30)
	})

	err := validateContractInput(contract, fixedNow)
	require.EqualError(t, err, "The contractor and client cannot be the same person")
}

func TestValidateContractInputIsDeterministic(t *testing.T) {
	contract := newContractInput(func(c *entities.Contract) {
		withHourlyBilling("100", 40, 40)(c)
		c.EndDate = startOfDay(fixedNow).AddDate(0, 0, 8)
	})

	first := validateContractInput(contract, fixedNow)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, validateContractInput(contract, fixedNow))
	}
}

func TestWeeksBetweenDates(t *testing.T) {
	tests := []struct {
		name          string
		days          int
		expectedWeeks int64
		expectedWhole bool
	}{
		{name: "zero days", days: 0, expectedWeeks: 0, expectedWhole: true},
		{name: "one day", days: 1, expectedWeeks: 0, expectedWhole: false},
		{name: "one week", days: 7, expectedWeeks: 1, expectedWhole: true},
		{name: "eight days", days: 8, expectedWeeks: 1, expectedWhole: false},
		{name: "four weeks", days: 28, expectedWeeks: 4, expectedWhole: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := startOfDay(fixedNow)
			end := start.AddDate(0, 0, tt.days)

			require.Equal(t, tt.expectedWeeks, weeksBetweenDates(start, end))
			require.Equal(t, tt.expectedWhole, isWholeWeeks(start, end))
		})
	}
}
