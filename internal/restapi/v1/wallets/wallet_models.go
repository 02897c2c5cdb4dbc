package v1wallets

// request and response types
type (
	GetMyWalletRequest struct{}

	GetMyWalletResponse struct {
		Wallet Wallet `json:"wallet"`
	}

	// CreateWalletRequest configures a wallet with an optional initial
	// balance. UserID is only honored for service-to-service calls.
	CreateWalletRequest struct {
		UserID         uint   `json:"user_id,omitempty"`
		InitialBalance string `json:"initial_balance,omitempty"`
	}

	CreateWalletResponse struct {
		Wallet Wallet `json:"wallet"`
	}
)

type Wallet struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	Balance string `json:"balance"`
}
