// internal/ledger/types.go
package ledger

import "errors"

// ErrNotFound is returned when the mirror node has no record of the
// requested resource. Recently submitted transactions can take a few
// seconds to appear.
var ErrNotFound = errors.New("ledger: not found")

const resultSuccess = "SUCCESS"

// Transaction is a settled transfer as reported by the mirror node.
type Transaction struct {
	TransactionID      string     `json:"transaction_id"`
	Result             string     `json:"result"`
	ConsensusTimestamp string     `json:"consensus_timestamp"`
	ChargedTxFee       int64      `json:"charged_tx_fee"`
	Transfers          []Transfer `json:"transfers"`
}

// Succeeded reports whether the transaction reached consensus successfully.
func (t *Transaction) Succeeded() bool {
	return t.Result == resultSuccess
}

// CreditedAmount returns the net tinybars credited to accountID by this
// transaction, zero if the account does not appear in the transfer list.
func (t *Transaction) CreditedAmount(accountID string) int64 {
	var credited int64
	for _, transfer := range t.Transfers {
		if transfer.Account == accountID && transfer.Amount > 0 {
			credited += transfer.Amount
		}
	}
	return credited
}

// Transfer is one leg of a transaction's transfer list. Amount is in
// tinybars, negative for debits.
type Transfer struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

// ExchangeRate is the network HBAR/USD rate: CentEquiv cents buy HbarEquiv
// hbars.
type ExchangeRate struct {
	CentEquiv      int64 `json:"cent_equivalent"`
	HbarEquiv      int64 `json:"hbar_equivalent"`
	ExpirationTime int64 `json:"expiration_time"`
}

// HbarPerUSD converts the network rate to hbars per US dollar, the factor
// the frontend multiplies display amounts by.
func (r *ExchangeRate) HbarPerUSD() float64 {
	if r.CentEquiv == 0 {
		return 0
	}
	return float64(r.HbarEquiv) * 100 / float64(r.CentEquiv)
}

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type accountResponse struct {
	Balance struct {
		Balance int64 `json:"balance"`
	} `json:"balance"`
}

type exchangeRateResponse struct {
	CurrentRate ExchangeRate `json:"current_rate"`
}
