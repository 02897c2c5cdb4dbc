package v1contracts

// request and response types
type (
	// CreateContractRequest contains all information to propose a new
	// contract. The contractor is always the session user.
	CreateContractRequest struct {
		Contract Contract `json:"contract"`
	}

	// CreateContractResponse contains the contract which was created through
	// the request parameters
	CreateContractResponse struct {
		Contract Contract `json:"contract"`
	}

	// ListContractsRequest asks for all contracts the session user takes
	// part in, as client or as contractor.
	ListContractsRequest struct{}

	ListContractsResponse struct {
		Contracts []Contract `json:"contracts"`
	}
)

type Contract struct {
	ID           uint   `json:"id,omitempty"`
	Name         string `json:"name"`
	Terms        string `json:"terms"`
	ClientID     uint   `json:"client_id"`
	ContractorID uint   `json:"contractor_id,omitempty"`
	JobID        uint   `json:"job_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	HourlyRate   string `json:"hourly_rate,omitempty"`
	HoursPerWeek *int64 `json:"hours_per_week,omitempty"`
	TotalHours   *int64 `json:"total_hours,omitempty"`
	TotalCost    string `json:"total_cost"`
	Status       string `json:"status,omitempty"`
}
