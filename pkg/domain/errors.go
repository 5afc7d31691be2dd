package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input error the engine reports.
// All errors below wrap it, so callers that only care whether the
// request was rejected can test errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation error")

var (
	// ErrInvalidDate is returned when a date text is not an 8 digit, valid calendar date.
	ErrInvalidDate = fmt.Errorf("%w: date should be in YYYYMMdd format", ErrValidation)

	// ErrInvalidYearMonth is returned when a statement month is not a 6 digit YYYYMM text.
	ErrInvalidYearMonth = fmt.Errorf("%w: year and month should be in YYYYMM format", ErrValidation)

	// ErrUnsupportedType is returned for any transaction type other than deposit or withdrawal.
	ErrUnsupportedType = fmt.Errorf("%w: transaction type should be D for deposit or W for withdrawal", ErrValidation)

	// ErrNonPositiveAmount is returned when a transaction amount is zero or negative.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)

	// ErrTooManyDecimals is returned when a transaction amount has more than 2 decimal places.
	ErrTooManyDecimals = fmt.Errorf("%w: amount can have at most 2 decimal places", ErrValidation)

	// ErrRateOutOfRange is returned when an interest rate is not strictly between 0 and 100.
	ErrRateOutOfRange = fmt.Errorf("%w: interest rate should be greater than 0 and less than 100", ErrValidation)

	// ErrEmptyAccountID is returned when a transaction names no account.
	ErrEmptyAccountID = fmt.Errorf("%w: account id is required", ErrValidation)

	// ErrInsufficientBalance is returned when a withdrawal exceeds the account balance.
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance for withdrawal", ErrValidation)
)

// ErrAccountNotFound is returned when a requested account does not exist.
var ErrAccountNotFound = errors.New("account not found")
