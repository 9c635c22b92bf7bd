package utils

import (
	"context"
	"miam/globals"
)

func GetUserIDFromContext(ctx context.Context) string {
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetUsernameFromContext(ctx context.Context) string {
	username, ok := ctx.Value(globals.UsernameKey).(string)
	if !ok {
		return ""
	}
	return username
}
