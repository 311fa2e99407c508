package passport

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/teamtally/clubdesk/internal/domain/user"
	"github.com/teamtally/clubdesk/internal/platform/cache"
	"github.com/teamtally/clubdesk/internal/platform/logging"
	"github.com/teamtally/clubdesk/internal/platform/resilience"
	"github.com/teamtally/clubdesk/internal/usecase"
)

var errPassportTransient = crerr.New("passport transient failure")

type Config struct {
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies bearer tokens against the passport account service. A
// verified principal is cached by token hash so hot tokens do not hit
// passport on every request, and an open circuit fails fast instead of
// stalling the request path.
type Client struct {
	httpClient     *fasthttp.Client
	introspectURL  string
	principals     *cache.Store
	flight         resilience.SingleFlight
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	logger         *logging.Logger
}

func NewClient(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		introspectURL:  buildURL(cfg.BaseURL, cfg.IntrospectPath),
		principals:     cache.NewStore(cacheTTL),
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	cacheKey := "principal:" + hashToken(token)
	if cached, ok := c.principals.Get(ctx, cacheKey); ok {
		if principal, ok := cached.(user.Principal); ok {
			return principal, nil
		}
	}

	// Concurrent requests with the same token share one introspection call.
	value, err, _ := c.flight.Do(cacheKey, func() (any, error) {
		return c.introspect(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, ok := value.(user.Principal)
	if !ok {
		return user.Principal{}, crerr.New("unexpected introspection result type")
	}

	c.principals.Set(ctx, cacheKey, principal)

	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "passport circuit breaker rejected request", "state", c.breaker.State())
			return user.Principal{}, fmt.Errorf("%w: passport is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	principal, err := c.doIntrospect(token)
	if c.circuitEnabled {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		if isCircuitFailure(err) {
			c.logger.WarnContext(ctx, "passport introspection failed", "error", err.Error())
			return user.Principal{}, fmt.Errorf("%w: passport introspection failed", usecase.ErrDependencyUnavailable)
		}
		return user.Principal{}, err
	}

	return principal, nil
}

func (c *Client) doIntrospect(token string) (user.Principal, error) {
	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)

	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}
	if _, err := body.Write(encoded); err != nil {
		return user.Principal{}, crerr.Wrap(err, "buffer introspect request")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.introspectURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBody(body.B)

	if err := c.httpClient.Do(req, resp); err != nil {
		return user.Principal{}, crerr.Mark(crerr.Wrap(err, "request introspection to passport"), errPassportTransient)
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusUnauthorized, fasthttp.StatusForbidden:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	default:
		return user.Principal{}, crerr.Mark(
			crerr.Newf("passport introspection failed with status %d", resp.StatusCode()),
			errPassportTransient,
		)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(resp.Body(), &decoded); err != nil {
		return user.Principal{}, crerr.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Role:   user.Role(decoded.Role),
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
