package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// queryValue returns the query parameter value and whether the parameter was
// present at all. A present-but-empty parameter still counts as a filter,
// matching the contract's "supplied" semantics.
func queryValue(c *fiber.Ctx, key string) (string, bool) {
	args := c.Request().URI().QueryArgs()
	if !args.Has(key) {
		return "", false
	}
	return string(args.Peek(key)), true
}
