package config

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ogerard/immoval/internal/parse"
)

// Amount is a numeric input field that accepts locale-formatted text
// ("292 000", "1 234,56") as well as plain YAML/JSON numbers. Unparsable
// values decode to 0 rather than failing, matching the calculator's
// contract of never erroring on user-typed numbers.
type Amount float64

// UnmarshalYAML decodes any scalar node through the locale-aware parser.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	*a = Amount(parse.Amount(value.Value))
	return nil
}

// UnmarshalJSON accepts both quoted locale-formatted strings and bare
// numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*a = 0
		return nil
	}
	*a = Amount(parse.Amount(s))
	return nil
}

// MarshalJSON renders the plain numeric value.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}
