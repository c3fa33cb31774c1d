package domain

// AccountSummary holds the dashboard figures for an account holder. The demo
// has no ledger, so every account reports the same fixed balances.
type AccountSummary struct {
	Balance            string
	AvailableCredit    string
	Savings            string
	RecentTransactions []Transaction
}

// DemoAccountSummary returns the fixed figures every account displays.
func DemoAccountSummary() AccountSummary {
	return AccountSummary{
		Balance:            "$10,000.00",
		AvailableCredit:    "$5,000.00",
		Savings:            "$2,500.00",
		RecentTransactions: []Transaction{},
	}
}

// Transaction is a ledger entry placeholder. The dashboard renders an empty
// list; the type exists so the response shape is stable if a ledger lands.
type Transaction struct {
	ID          string
	Description string
	Amount      string
}
