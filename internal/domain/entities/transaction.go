package entities

import "time"

// 交易动作
const (
	TransactionDeposit  = "deposit"
	TransactionWithdraw = "withdraw"
)

// Transaction 交易实体，仅由余额调整在内部写入，管理端只读
type Transaction struct {
	ID            string      `json:"id" db:"id"`
	Code          string      `json:"code" db:"code"`
	UserID        string      `json:"-" db:"user_id"`
	User          UserSummary `json:"user" db:"-"`
	Amount        float64     `json:"amount" db:"amount"`
	BalanceBefore float64     `json:"balanceBefore" db:"balance_before"`
	BalanceAfter  float64     `json:"balanceAfter" db:"balance_after"`
	Action        string      `json:"action" db:"action"`
	Note          string      `json:"note" db:"note"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}
