package console

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/shopspring/decimal"
)

// Tokenize splits a command line on whitespace. Double quotes group words and
// a backslash escapes the next character inside quotes.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inQuote bool
		escaped bool
		started bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && unicode.IsSpace(r):
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if inQuote || escaped {
		return nil, apperr.Validation("unterminated quote")
	}
	if started {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

// Request is one parsed command. Words after the action are either key=value
// arguments or positional values.
type Request struct {
	Domain     string
	Action     string
	Args       map[string]string
	Positional []string
}

func ParseRequest(tokens []string) *Request {
	req := &Request{Args: map[string]string{}}
	if len(tokens) > 0 {
		req.Domain = strings.ToLower(tokens[0])
	}
	rest := tokensAfter(tokens, 1)
	if len(rest) > 0 && !strings.Contains(rest[0], "=") {
		req.Action = strings.ToLower(rest[0])
		rest = rest[1:]
	}
	for _, tok := range rest {
		if key, value, ok := strings.Cut(tok, "="); ok && key != "" {
			req.Args[strings.ToLower(key)] = value
			continue
		}
		req.Positional = append(req.Positional, tok)
	}
	return req
}

func tokensAfter(tokens []string, n int) []string {
	if len(tokens) <= n {
		return nil
	}
	return tokens[n:]
}

func (r *Request) Has(key string) bool {
	_, ok := r.Args[key]
	return ok
}

func (r *Request) String(key string) string {
	return r.Args[key]
}

// StringPtr is nil when key is absent, so updates can tell "unset" from "empty".
func (r *Request) StringPtr(key string) *string {
	v, ok := r.Args[key]
	if !ok {
		return nil
	}
	return &v
}

// ID returns the id argument, falling back to the first positional value.
func (r *Request) ID() (string, error) {
	if id := strings.TrimSpace(r.Args["id"]); id != "" {
		return id, nil
	}
	if len(r.Positional) > 0 {
		return r.Positional[0], nil
	}
	return "", apperr.Validation("id required")
}

func (r *Request) IntPtr(key string) (*int, error) {
	v, ok := r.Args[key]
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil, apperr.Validationf("invalid %s %q", key, v)
	}
	return &n, nil
}

func (r *Request) Int(key string, fallback int) (int, error) {
	n, err := r.IntPtr(key)
	if err != nil || n == nil {
		return fallback, err
	}
	return *n, nil
}

func (r *Request) BoolPtr(key string) (*bool, error) {
	v, ok := r.Args[key]
	if !ok {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		b := true
		return &b, nil
	case "0", "false", "no", "off":
		b := false
		return &b, nil
	}
	return nil, apperr.Validationf("invalid %s %q", key, v)
}

func (r *Request) Bool(key string) (bool, error) {
	b, err := r.BoolPtr(key)
	if err != nil || b == nil {
		return false, err
	}
	return *b, nil
}

func (r *Request) DecimalPtr(key string) (*decimal.Decimal, error) {
	v, ok := r.Args[key]
	if !ok {
		return nil, nil
	}
	d, err := ParseDecimal(key, v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func ParseDecimal(name, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, apperr.Validationf("invalid %s %q", name, raw)
	}
	return d, nil
}

// Confirmed guards destructive commands behind confirm=yes.
func (r *Request) Confirmed() error {
	if strings.EqualFold(r.Args["confirm"], "yes") {
		return nil
	}
	return apperr.Validation("confirmation required, repeat with confirm=yes")
}

func (r *Request) Route() string {
	return fmt.Sprintf("%s %s", r.Domain, r.Action)
}
