// Package console is the interactive front end: it reads one command per line,
// dispatches it to the registered domain handlers and prints JSON results.
package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/auth"
	"github.com/fekuna/omnipos-console/internal/logger"
	"go.uber.org/zap"
)

const (
	kindUnauthorized = "unauthorized"
)

type Message struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type Console struct {
	router *Router
	gate   *auth.Gate
	prompt string
	out    io.Writer
	logger logger.ZapLogger
	user   *auth.UserContext
}

func New(router *Router, gate *auth.Gate, prompt string, out io.Writer, log logger.ZapLogger) *Console {
	return &Console{
		router: router,
		gate:   gate,
		prompt: prompt,
		out:    out,
		logger: log,
	}
}

// Run reads commands from in until EOF, quit, or ctx is cancelled.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(c.out, c.prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if quit := c.Exec(ctx, line); quit {
				return nil
			}
		}
	}
}

// Exec runs one command line and reports whether the console should exit.
func (c *Console) Exec(ctx context.Context, line string) bool {
	tokens, err := Tokenize(line)
	if err != nil {
		c.printError(err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}
	req := ParseRequest(tokens)

	switch req.Domain {
	case "quit", "exit":
		return true
	case "help":
		c.print(c.help())
		return false
	case "login":
		c.login(req)
		return false
	case "logout":
		if c.user != nil {
			c.logger.Info("logged out", zap.String("email", c.user.Email))
		}
		c.user = nil
		c.print(Message{Message: "logged out"})
		return false
	case "whoami":
		if c.user == nil {
			c.printError(errNotLoggedIn)
			return false
		}
		c.print(c.user)
		return false
	}

	if c.user == nil {
		c.printError(errNotLoggedIn)
		return false
	}

	res, err := c.router.Dispatch(auth.WithUser(ctx, c.user), req)
	if err != nil {
		c.printError(err)
		return false
	}
	if res == nil {
		res = Message{Message: "ok"}
	}
	c.print(res)
	return false
}

var errNotLoggedIn = errors.New("login required: login email=<email> password=<password>")

// LoggedIn reports whether a session is active.
func (c *Console) LoggedIn() bool {
	return c.user != nil
}

func (c *Console) login(req *Request) {
	// "login <email> <password>" is accepted alongside the key=value form
	email, password := req.String("email"), req.String("password")
	positional := req.Positional
	if email == "" && req.Action != "" {
		email = req.Action
	} else if email == "" && len(positional) > 0 {
		email, positional = positional[0], positional[1:]
	}
	if password == "" && len(positional) > 0 {
		password = positional[0]
	}

	if email == "" || password == "" {
		c.printError(apperr.Validation("email and password required"))
		return
	}

	user, err := c.gate.Login(email, password)
	if err != nil {
		c.logger.Warn("login failed", zap.String("email", email))
		c.printError(err)
		return
	}
	c.user = user
	c.logger.Info("logged in", zap.String("email", user.Email))
	c.print(Message{Message: "welcome " + user.Email})
}

func (c *Console) help() []string {
	lines := []string{
		"login email=<email> password=<password>",
		"logout",
		"whoami",
		"help",
		"quit",
	}
	return append(lines, c.router.Usage()...)
}

func (c *Console) print(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.logger.Error("failed to encode result", zap.Error(err))
		data, _ = json.Marshal(ErrorResponse{Error: err.Error(), Kind: "internal"})
	}
	fmt.Fprintln(c.out, string(data))
}

func (c *Console) printError(err error) {
	kind := apperr.Kind(err)
	if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, errNotLoggedIn) {
		kind = kindUnauthorized
	}
	c.print(ErrorResponse{Error: strings.TrimSpace(err.Error()), Kind: kind})
}
