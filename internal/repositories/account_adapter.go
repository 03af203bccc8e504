package repositories

import (
	"encoding/json"

	"github.com/sbilibin2017/invest-ledger/internal/history"
	"github.com/sbilibin2017/invest-ledger/internal/models"
)

// Field aliases found in stored account documents, canonical name first.
var (
	totalDepositFields   = []string{"totalDeposit", "total_deposit"}
	totalWithdrawFields  = []string{"totalWithdraw", "total_withdraw", "total_withdrawn"}
	dailyProfitFields    = []string{"dailyProfit", "daily_profit"}
	totalProfitFields    = []string{"totalProfit", "total_profit"}
	lastProfitDateFields = []string{"lastProfitDate", "last_profit_date"}
	lastClaimDateFields  = []string{"lastClaimDate", "last_claim_date"}
	planFields           = []string{"plans", "activePlans"}
)

// DecodeAccount maps a stored account document, in any of its historical
// shapes, onto the canonical schema. Key and version are left to the caller.
func DecodeAccount(data []byte) (*models.Account, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	acct := &models.Account{
		Email:          stringOf(doc["email"]),
		Phone:          stringOf(doc["phone"]),
		Balance:        history.NumberOrZero(doc["balance"]),
		TotalDeposit:   history.NumberOrZero(first(doc, totalDepositFields)),
		TotalWithdraw:  history.NumberOrZero(first(doc, totalWithdrawFields)),
		LastProfitDate: stringOf(first(doc, lastProfitDateFields)),
		LastClaimDate:  stringOf(first(doc, lastClaimDateFields)),
	}

	if v := first(doc, dailyProfitFields); v != nil {
		acct.DailyProfit = history.NumberOrZero(v)
		acct.HasDailyProfit = true
	}
	if v := first(doc, totalProfitFields); v != nil {
		p := history.NumberOrZero(v)
		acct.TotalProfit = &p
	}

	for _, key := range planFields {
		if plans, ok := doc[key].([]any); ok {
			for _, p := range plans {
				raw, err := json.Marshal(p)
				if err != nil {
					return nil, err
				}
				acct.Plans = append(acct.Plans, raw)
			}
			break
		}
	}

	deposits, _ := doc["depositHistory"].([]any)
	withdrawals, _ := doc["withdrawHistory"].([]any)
	acct.DepositHistory = history.Normalize(deposits, models.EntryTypeDeposit)
	acct.WithdrawHistory = history.Normalize(withdrawals, models.EntryTypeWithdraw)

	return acct, nil
}

// EncodeAccount serializes the canonical document.
func EncodeAccount(acct *models.Account) ([]byte, error) {
	return json.Marshal(acct)
}

func first(doc map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := doc[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
