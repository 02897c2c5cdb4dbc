package v1contracts

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gigmarket/billing-service/internal/entities"
)

const isoDateFormat = "2006-01-02"

func contractEntityFrom(dto Contract, contractorID uint) (*entities.Contract, error) {
	startDate, err := parseIsoDate(dto.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	endDate, err := parseIsoDate(dto.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	contract := &entities.Contract{
		Name:         dto.Name,
		Terms:        dto.Terms,
		ClientID:     dto.ClientID,
		ContractorID: contractorID,
		JobID:        dto.JobID,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalCost:    dto.TotalCost,
		Status:       entities.ContractStatus(dto.Status),
	}

	if dto.HourlyRate != "" {
		contract.HourlyRate = sql.NullString{String: dto.HourlyRate, Valid: true}
	}
	if dto.HoursPerWeek != nil {
		contract.HoursPerWeek = sql.NullInt64{Int64: *dto.HoursPerWeek, Valid: true}
	}
	if dto.TotalHours != nil {
		contract.TotalHours = sql.NullInt64{Int64: *dto.TotalHours, Valid: true}
	}

	return contract, nil
}

func contractDtoFrom(contract *entities.Contract) Contract {
	dto := Contract{
		ID:           contract.ID,
		Name:         contract.Name,
		Terms:        contract.Terms,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		JobID:        contract.JobID,
		StartDate:    contract.StartDate.Format(isoDateFormat),
		EndDate:      contract.EndDate.Format(isoDateFormat),
		TotalCost:    contract.TotalCost,
		Status:       string(contract.Status),
	}

	if contract.HourlyRate.Valid {
		dto.HourlyRate = contract.HourlyRate.String
	}
	if contract.HoursPerWeek.Valid {
		hours := contract.HoursPerWeek.Int64
		dto.HoursPerWeek = &hours
	}
	if contract.TotalHours.Valid {
		hours := contract.TotalHours.Int64
		dto.TotalHours = &hours
	}

	return dto
}

func parseIsoDate(value string, field string) (time.Time, error) {
	parsed, err := time.Parse(isoDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an ISO date (YYYY-MM-DD)", field)
	}

	return parsed, nil
}
