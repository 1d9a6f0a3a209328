package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/campushub/circulation-service/config"
	"github.com/campushub/circulation-service/internal/errs"
	"github.com/campushub/circulation-service/internal/model"
	"github.com/campushub/circulation-service/pkg/circuit_breaker"
)

// Client talks to the identity-provider, the collaborator owning users.
// The circulation core only needs role and college of a user id.
type Client struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.IdentityHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewClient(log *zap.Logger, cfg config.Config) *Client {
	return &Client{
		log:    log.Named("identity"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.IdentityHTTPServer,
		cb:     circuit_breaker.New(20, 10*time.Second, 0.5, 5),
	}
}

func (s *Client) ResolveUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := s.cb.Call(func() error {
		req, err := http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			fmt.Sprintf("http://%s/api/v1/users/%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), userID),
			nil)
		if err != nil {
			return err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
		case http.StatusNotFound:
			return errs.ErrNotFound
		default:
			return fmt.Errorf("identity-provider status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&user)
	})
	if err != nil {
		s.log.Warn("ResolveUser", zap.String("userID", userID), zap.Error(err))
		return model.User{}, err
	}
	return user, nil
}
