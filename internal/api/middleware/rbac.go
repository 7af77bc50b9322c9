package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stocktrack/inventory-api/internal/api/metrics"
	"github.com/stocktrack/inventory-api/internal/core/auth"
	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

type routeKey struct {
	method string
	path   string
}

// Policy is the static (method, path) → allowed-roles table. It is populated
// during route registration, checked for completeness at startup, and
// immutable while serving: concurrent reads need no lock. A route with no
// entry is denied.
type Policy struct {
	rules  map[routeKey]map[domain.Role]struct{}
	public map[string]struct{}
	audit  ports.AuditSink
}

func NewPolicy() *Policy {
	return &Policy{
		rules:  make(map[routeKey]map[domain.Role]struct{}),
		public: make(map[string]struct{}),
	}
}

// WithAudit attaches an audit sink for authorization denials.
func (p *Policy) WithAudit(sink ports.AuditSink) *Policy {
	p.audit = sink
	return p
}

// Allow grants roles access to (method, path). Path is the echo route
// pattern, e.g. "/items/:id".
func (p *Policy) Allow(method, path string, roles ...domain.Role) {
	key := routeKey{method: method, path: path}
	set, ok := p.rules[key]
	if !ok {
		set = make(map[domain.Role]struct{}, len(roles))
		p.rules[key] = set
	}
	for _, r := range roles {
		set[r] = struct{}{}
	}
}

// Public marks a path as exempt from authentication and authorization.
func (p *Policy) Public(path string) {
	p.public[path] = struct{}{}
}

// PublicPaths returns the registered public paths, for the auth middleware.
func (p *Policy) PublicPaths() []string {
	paths := make([]string, 0, len(p.public))
	for path := range p.public {
		paths = append(paths, path)
	}
	return paths
}

// Check verifies that every registered non-public route has a policy entry.
// Called once at startup so a routing/policy gap fails the process instead of
// silently denying (or worse, allowing) at request time.
func (p *Policy) Check(routes []*echo.Route) error {
	for _, r := range routes {
		if _, ok := p.public[r.Path]; ok {
			continue
		}
		if _, ok := p.rules[routeKey{method: r.Method, path: r.Path}]; !ok {
			return fmt.Errorf("route %s %s has no access policy entry", r.Method, r.Path)
		}
	}
	return nil
}

// Middleware enforces the policy table. It runs after Auth, so a missing
// security context means the request never authenticated and is denied.
func (p *Policy) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := p.public[c.Path()]; ok {
				return next(c)
			}

			sc, ok := c.Get(ContextKeySecurity).(auth.SecurityContext)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			allowed, ok := p.rules[routeKey{method: c.Request().Method, path: c.Path()}]
			if !ok {
				// Routed but unlisted: default deny.
				p.recordDenial(sc, c)
				metrics.AuthzDecisionsTotal.WithLabelValues("deny").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if _, ok := allowed[sc.Role]; !ok {
				p.recordDenial(sc, c)
				metrics.AuthzDecisionsTotal.WithLabelValues("deny").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}

func (p *Policy) recordDenial(sc auth.SecurityContext, c echo.Context) {
	if p.audit == nil {
		return
	}
	p.audit.Record(domain.AuditEvent{
		Subject:   sc.Subject,
		Action:    c.Request().Method,
		Resource:  c.Path(),
		Decision:  domain.AuditDenied,
		Reason:    "insufficient role",
		Timestamp: time.Now().UTC(),
	})
}
