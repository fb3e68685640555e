package appcontext

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	methodKey    contextKey = "method"
	routeKey     contextKey = "route"
	remoteIPKey  contextKey = "remote_ip"
	refererKey   contextKey = "referer"
)

func setString(ctx context.Context, key contextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func getString(ctx context.Context, key contextKey) string {
	value, _ := ctx.Value(key).(string)
	return value
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return setString(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	return getString(ctx, requestIDKey)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return setString(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) string {
	return getString(ctx, userIDKey)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return setString(ctx, methodKey, method)
}

func GetMethod(ctx context.Context) string {
	return getString(ctx, methodKey)
}

func SetRoute(ctx context.Context, route string) context.Context {
	return setString(ctx, routeKey, route)
}

func GetRoute(ctx context.Context) string {
	return getString(ctx, routeKey)
}

func SetRemoteIP(ctx context.Context, remoteIP string) context.Context {
	return setString(ctx, remoteIPKey, remoteIP)
}

func GetRemoteIP(ctx context.Context) string {
	return getString(ctx, remoteIPKey)
}

func SetReferer(ctx context.Context, referer string) context.Context {
	return setString(ctx, refererKey, referer)
}

func GetReferer(ctx context.Context) string {
	return getString(ctx, refererKey)
}
