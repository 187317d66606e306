package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey int

const (
	AppKey ContextKey = iota
	ParamsKey
	LoggerKey
	UserKey
	SessionIDKey
	NavItemsKey
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
