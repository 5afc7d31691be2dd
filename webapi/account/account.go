package account

import (
	"fmt"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

// Routes registers the ledger endpoints.
//
// Routes:
//   - POST /transactions                     : Post a deposit or withdrawal.
//   - GET  /accounts                         : List accounts with balances.
//   - GET  /accounts/:id                     : One account and its transactions.
//   - GET  /accounts/:id/statements/:month   : Monthly statement (month is YYYYMM).
func Routes(r fiber.Router, a *app.App) {
	r.Post("/transactions", PostTransaction(a))
	r.Get("/accounts", ListAccounts(a))
	r.Get("/accounts/:id", GetAccount(a))
	r.Get("/accounts/:id/statements/:month", GetStatement(a))
}

// PostTransaction returns a handler that posts a transaction and responds
// with the stored transaction and its assigned id.
func PostTransaction(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PostTransactionRequest](c)
		if input == nil {
			return err
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", fmt.Errorf("%w: %w", domain.ErrValidation, err))
		}
		tx, err := a.PostTransaction(c.UserContext(), input.Date, input.Account, input.Type, amount)
		if err != nil {
			log.Errorf("Failed to post transaction: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to post transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction posted", toTransactionDTO(tx))
	}
}

func ListAccounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts := a.ListAccounts()
		out := make([]AccountDTO, 0, len(accounts))
		for _, acc := range accounts {
			out = append(out, toAccountDTO(acc))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", out)
	}
}

func GetAccount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acc, err := a.GetAccount(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Account not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", toAccountDTO(acc))
	}
}

// GetStatement returns a handler for the monthly statement. A malformed
// month is rejected; an unknown account gets an empty statement.
func GetStatement(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, month := c.Params("id"), c.Params("month")
		if _, err := calendar.ParseYearMonth(month); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid month", fmt.Errorf("%w: %w", domain.ErrInvalidYearMonth, err))
		}
		lines := a.GenerateStatement(id, month)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement generated", toStatementDTO(id, month, lines))
	}
}
