package context

import (
	"context"

	"github.com/muhammadheryan/esports-tournament/constant"
)

// GetAdminSubject returns the subject of the admin token that authorized the request.
func GetAdminSubject(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AdminSubjectKey)
	if v == nil {
		return "", false
	}
	sub, ok := v.(string)
	return sub, ok
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}
