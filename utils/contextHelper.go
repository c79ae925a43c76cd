package utils

import (
	"context"

	"github.com/mmdatafocus/hotel_analytics/appctx"
)

var (
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
	ContextKeyClientIP      = appctx.ContextKeyClientIP
	ContextKeyReportName    = appctx.ContextKeyReportName
)

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}

func GetClientIPFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyClientIP)
}

func SetClientIPInContext(ctx context.Context, ip string) context.Context {
	return appctx.Set(ctx, ContextKeyClientIP, ip)
}

func GetReportNameFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyReportName)
}

func SetReportNameInContext(ctx context.Context, name string) context.Context {
	return appctx.Set(ctx, ContextKeyReportName, name)
}
