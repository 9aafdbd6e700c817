package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
)

type sessionContextKey struct{ name string }

var sessionCtxKey = &sessionContextKey{"session"}

var tracer = otel.Tracer("shelf-mgmt/authz")

type Authenticator interface {
	RequireSession() func(http.Handler) http.Handler
}

type impl struct {
	query rego.PreparedEvalQuery
}

// NewAuthenticator prepares the authorization policy for evaluation. The
// policy decides whether a token is valid and yields the caller's role and
// organization; the resulting session is stored in the request context.
func NewAuthenticator(ctx context.Context, policies io.Reader) (Authenticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.shelfmgmt.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return &impl{query: query}, nil
}

func (a *impl) RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetFromContext(r.Context())

			_, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token := r.Header.Get("Authorization")

			if token == "" || !strings.HasPrefix(token, "Bearer ") {
				err = errors.New("authorization header missing")
				logger.Info(err.Error())
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"token": token[7:],
			}

			results, err := a.query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error("auth failed", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			binding := results[0].Bindings["x"]

			// A denied token comes back as a single bool.
			allowed, ok := binding.(bool)
			if ok && !allowed {
				err = errors.New("authorization failed")
				logger.Warn(err.Error())
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			result, ok := binding.(map[string]any)
			if !ok {
				err = errors.New("unexpected result type")
				logger.Error("opa error", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			session, err := sessionFromResult(result)
			if err != nil {
				logger.Error("bad response from authz policy engine", "err", err.Error())
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			r = r.WithContext(WithSession(r.Context(), session))

			next.ServeHTTP(w, r)
		})
	}
}

func sessionFromResult(result map[string]any) (scope.Session, error) {
	role, ok := result["role"].(string)
	if !ok {
		return scope.Session{}, errors.New("policy result carries no role")
	}

	session := scope.Session{Role: scope.Role(role)}

	// organization_id is optional; sys_admin sessions have none.
	if v, ok := result["organization_id"]; ok && v != nil {
		f, ok := v.(float64)
		if !ok {
			return scope.Session{}, errors.New("policy result carries a non-numeric organization_id")
		}
		orgID := int64(f)
		session.OrganizationID = &orgID
	}

	return session, nil
}

func WithSession(ctx context.Context, s scope.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// GetSessionFromContext returns the authenticated session, or a zero session
// when the request never passed the authenticator.
func GetSessionFromContext(ctx context.Context) scope.Session {
	s, ok := ctx.Value(sessionCtxKey).(scope.Session)
	if !ok {
		return scope.Session{}
	}
	return s
}
