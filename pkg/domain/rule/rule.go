// Package rule holds the interest rule entity.
package rule

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InterestRule sets the annual interest rate, in percent, from Date
// onwards until the next rule takes over. ID is a free-form label and is
// not required to be unique.
type InterestRule struct {
	Date civil.Date
	ID   string
	Rate decimal.Decimal
}

// New builds an interest rule. Range checks belong to the rule service.
func New(date civil.Date, id string, rate decimal.Decimal) InterestRule {
	return InterestRule{Date: date, ID: id, Rate: rate}
}
