package rule

import (
	"fmt"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/calendar"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/rule"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

// AddRuleRequest is the body of POST /interest-rules. Rate is a percentage.
type AddRuleRequest struct {
	Date   string `json:"date" validate:"required"`
	RuleID string `json:"rule_id" validate:"required,max=64"`
	Rate   string `json:"rate" validate:"required"`
}

type RuleDTO struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

// Routes registers the interest rule endpoints.
func Routes(r fiber.Router, a *app.App) {
	r.Post("/interest-rules", AddRule(a))
	r.Get("/interest-rules", ListRules(a))
}

// AddRule returns a handler that stores a rule and responds with the full
// rule list, as the console does.
func AddRule(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AddRuleRequest](c)
		if input == nil {
			return err
		}
		rate, err := decimal.NewFromString(input.Rate)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid rate", fmt.Errorf("%w: %w", domain.ErrValidation, err))
		}
		_, replaced, err := a.AddRule(c.UserContext(), input.Date, input.RuleID, rate)
		if err != nil {
			log.Errorf("Failed to add interest rule: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to add interest rule", err)
		}
		msg := "Interest rule added"
		if replaced {
			msg = "Interest rule replaced"
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, msg, toRuleDTOs(a.ListRules()))
	}
}

func ListRules(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Interest rules fetched", toRuleDTOs(a.ListRules()))
	}
}

func toRuleDTOs(rules []rule.InterestRule) []RuleDTO {
	out := make([]RuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleDTO{
			Date:   calendar.Format(r.Date),
			RuleID: r.ID,
			Rate:   r.Rate.StringFixed(2),
		})
	}
	return out
}
