// Package console implements the interactive menu-driven front end of the
// ledger: transactions, interest rules and monthly statements typed in one
// line at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/service/statement"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Bank is the part of the application facade the console drives.
type Bank interface {
	PostTransaction(ctx context.Context, dateText, accountID, typeText string, amount decimal.Decimal) (account.Transaction, error)
	AddRule(ctx context.Context, dateText, ruleID string, rate decimal.Decimal) (rule.InterestRule, bool, error)
	ListRules() []rule.InterestRule
	GenerateStatement(accountID, yearMonth string) []statement.Line
	GetAccount(id string) (account.Account, error)
}

const (
	msgInvalidFormat    = "Invalid input format"
	msgInvalidAmount    = "Invalid amount"
	msgInvalidRate      = "Invalid rate"
	msgInvalidYearMonth = "Year and month should be in YYYYMM format"
)

// userErrors are reported without the validation prefix, in this order.
var userErrors = []error{
	domain.ErrInsufficientBalance,
	domain.ErrInvalidDate,
	domain.ErrInvalidYearMonth,
	domain.ErrUnsupportedType,
	domain.ErrNonPositiveAmount,
	domain.ErrTooManyDecimals,
	domain.ErrRateOutOfRange,
	domain.ErrEmptyAccountID,
	money.ErrAmountOutOfRange,
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	err    lipgloss.Style
}

// Console reads commands from in and writes prompts and tables to out.
type Console struct {
	bank     Bank
	in       *bufio.Scanner
	out      io.Writer
	bankName string
	styled   bool
	styles   styles
}

// Option configures a Console.
type Option func(*Console)

// WithBankName sets the name used in the greeting and farewell.
func WithBankName(name string) Option {
	return func(c *Console) { c.bankName = name }
}

// WithStyle turns on lipgloss styling. Use it only when out is a terminal.
func WithStyle(styled bool) Option {
	return func(c *Console) { c.styled = styled }
}

func New(bank Bank, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		bank:     bank,
		in:       bufio.NewScanner(in),
		out:      out,
		bankName: "AwesomeGIC Bank",
		styles: styles{
			title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
			header: lipgloss.NewStyle().Bold(true),
			err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println(c.style(c.styles.title, fmt.Sprintf("Welcome to %s!", c.bankName)))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.menu()
		line, ok := c.readLine()
		if !ok {
			c.goodbye()
			return c.in.Err()
		}
		if line == "" {
			continue
		}

		switch strings.ToUpper(line[:1]) {
		case "T":
			c.inputTransaction(ctx)
		case "I":
			c.inputInterestRule(ctx)
		case "P":
			c.printStatement()
		case "Q":
			c.goodbye()
			return nil
		default:
			c.println("Invalid option. Please try again.")
		}
	}
}

func (c *Console) menu() {
	c.println("What would you like to do?")
	c.println("[T] Input transactions")
	c.println("[I] Define interest rules")
	c.println("[P] Print statement")
	c.println("[Q] Quit")
	c.print("> ")
}

func (c *Console) goodbye() {
	c.println(fmt.Sprintf("Thank you for banking with %s.", c.bankName))
	c.println("Have a nice day!")
}

func (c *Console) inputTransaction(ctx context.Context) {
	fields, ok := c.prompt("Please enter transaction details in <Date> <Account> <Type> <Amount> format")
	if !ok {
		return
	}
	if len(fields) != 4 {
		c.report(msgInvalidFormat)
		return
	}
	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		c.report(msgInvalidAmount)
		return
	}
	_, err = c.bank.PostTransaction(ctx, fields[0], fields[1], fields[2], amount)
	if err != nil {
		c.fail(err)
		return
	}
	acc, err := c.bank.GetAccount(fields[1])
	if err != nil {
		c.fail(err)
		return
	}

	c.println("Account: " + acc.ID)
	c.println(c.style(c.styles.header, "| Date     | Txn Id      | Type | Amount |"))
	for _, t := range acc.Transactions() {
		c.println(fmt.Sprintf("| %s | %-11s | %-4s | %6s |", calendar.Format(t.Date), t.ID, t.Type, t.Amount))
	}
	c.println("")
}

func (c *Console) inputInterestRule(ctx context.Context) {
	fields, ok := c.prompt("Please enter interest rules details in <Date> <RuleId> <Rate in %> format")
	if !ok {
		return
	}
	if len(fields) != 3 {
		c.report(msgInvalidFormat)
		return
	}
	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		c.report(msgInvalidRate)
		return
	}
	if _, _, err := c.bank.AddRule(ctx, fields[0], fields[1], rate); err != nil {
		c.fail(err)
		return
	}

	c.println("Interest rules:")
	c.println(c.style(c.styles.header, "| Date     | RuleId | Rate (%) |"))
	for _, r := range c.bank.ListRules() {
		c.println(fmt.Sprintf("| %s | %-6s | %8s |", calendar.Format(r.Date), r.ID, r.Rate.StringFixed(2)))
	}
	c.println("")
}

func (c *Console) printStatement() {
	fields, ok := c.prompt("Please enter account and month to generate the statement <Account> <Year><Month>")
	if !ok {
		return
	}
	if len(fields) != 2 {
		c.report(msgInvalidFormat)
		return
	}
	accountID, yearMonth := fields[0], fields[1]
	if !isYearMonth(yearMonth) {
		c.report(msgInvalidYearMonth)
		return
	}

	lines := c.bank.GenerateStatement(accountID, yearMonth)
	if len(lines) == 0 {
		c.println("No transactions found for the specified month.")
		return
	}
	c.println("Account: " + accountID)
	c.println(c.style(c.styles.header, "| Date     | Txn Id      | Type | Amount | Balance |"))
	for _, l := range lines {
		c.println(fmt.Sprintf("| %s | %-11s | %-4s | %6s | %7s |",
			calendar.Format(l.Date), l.TransactionID, l.Type, l.Amount, l.Balance))
	}
	c.println("")
}

// prompt prints the request and reads one line. A blank line means go back
// to the menu.
func (c *Console) prompt(request string) ([]string, bool) {
	c.println(request)
	c.println("(or enter blank to go back to main menu):")
	c.print("> ")
	line, ok := c.readLine()
	if !ok || line == "" {
		return nil, false
	}
	return strings.Fields(line), true
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) fail(err error) {
	c.report(userMessage(err))
}

func (c *Console) report(msg string) {
	c.println(c.style(c.styles.err, "Error: "+msg))
}

// userMessage strips the validation prefix from engine errors and
// capitalizes the remainder for display.
func userMessage(err error) string {
	for _, known := range userErrors {
		if errors.Is(err, known) {
			return capitalize(strings.TrimPrefix(known.Error(), domain.ErrValidation.Error()+": "))
		}
	}
	return err.Error()
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func isYearMonth(text string) bool {
	if len(text) != 6 {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c *Console) style(s lipgloss.Style, text string) string {
	if !c.styled {
		return text
	}
	return s.Render(text)
}

func (c *Console) print(text string) {
	fmt.Fprint(c.out, text)
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}
