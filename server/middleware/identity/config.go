package identity

import (
	"github.com/gofiber/fiber/v2"

	"todoapi/store"
)

// Locals keys populated by the middleware for downstream handlers.
const (
	LocalsUserID = "user_id"
	LocalsStore  = "todo_store"
)

type Config struct {
	// Next defines a function to skip middleware.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Registry provisions the per-user todo store.
	//
	// Required. Default: nil
	Registry *store.Registry

	// Header is the request header carrying the user identity.
	//
	// Optional. Default: "User-ID"
	Header string
}

var ConfigDefault = Config{
	Next:     nil,
	Registry: nil,
	Header:   "User-ID",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.Next == nil {
		cfg.Next = ConfigDefault.Next
	}
	if cfg.Header == "" {
		cfg.Header = ConfigDefault.Header
	}

	return cfg
}
