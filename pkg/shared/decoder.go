package shared

import (
	"github.com/go-playground/form"
)

// Decoder is the shared form/query decoder. Struct fields are matched by
// their `form` tag.
var Decoder = form.NewDecoder()
