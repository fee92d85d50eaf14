package console

import (
	"context"
	"fmt"
	"sort"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/logger"
	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, req *Request) (interface{}, error)

type Route struct {
	Domain  string
	Action  string
	Usage   string
	Handler HandlerFunc
}

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r *Router)
}

type Router struct {
	routes map[string]Route
	logger logger.ZapLogger
}

func NewRouter(log logger.ZapLogger) *Router {
	return &Router{
		routes: map[string]Route{},
		logger: log,
	}
}

func (r *Router) Handle(domain, action, usage string, h HandlerFunc) {
	key := domain + " " + action
	if _, exists := r.routes[key]; exists {
		panic(fmt.Sprintf("console: route %q registered twice", key))
	}
	r.routes[key] = Route{Domain: domain, Action: action, Usage: usage, Handler: h}
}

func (r *Router) Dispatch(ctx context.Context, req *Request) (interface{}, error) {
	route, ok := r.routes[req.Route()]
	if !ok {
		return nil, apperr.Validationf("unknown command %q, try help", req.Route())
	}

	res, err := route.Handler(ctx, req)
	if err != nil {
		if apperr.Kind(err) == "internal" {
			r.logger.Error("command failed", zap.String("command", req.Route()), zap.Error(err))
		} else {
			r.logger.Debug("command rejected", zap.String("command", req.Route()), zap.Error(err))
		}
		return nil, err
	}
	return res, nil
}

// Usage lists every registered command, sorted.
func (r *Router) Usage() []string {
	lines := make([]string, 0, len(r.routes))
	for _, route := range r.routes {
		lines = append(lines, route.Usage)
	}
	sort.Strings(lines)
	return lines
}
