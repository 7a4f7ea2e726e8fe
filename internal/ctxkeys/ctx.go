package ctxkeys

import (
	"context"

	"github.com/stablebook/stablebook/internal/config"
	"github.com/stablebook/stablebook/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	RiderKey     contextKey = "rider"
	TrainerKey   contextKey = "is_trainer"
	AdminKey     contextKey = "is_admin"
	ConfigKey    contextKey = "config"
	CSRFTokenKey contextKey = "csrf_token"
	RequestIDKey contextKey = "request_id"
)

// Rider returns the authenticated rider for the request, or nil when the
// caller is not logged in as a rider.
func Rider(ctx context.Context) *model.Rider {
	rider, _ := ctx.Value(RiderKey).(*model.Rider)
	return rider
}

func WithRider(ctx context.Context, rider *model.Rider) context.Context {
	return context.WithValue(ctx, RiderKey, rider)
}

func IsTrainer(ctx context.Context) bool {
	v, _ := ctx.Value(TrainerKey).(bool)
	return v
}

func WithTrainer(ctx context.Context) context.Context {
	return context.WithValue(ctx, TrainerKey, true)
}

func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(AdminKey).(bool)
	return v
}

func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, AdminKey, true)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
