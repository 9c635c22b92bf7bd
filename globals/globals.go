package globals

type ContextKey string

const (
	UserIDKey   ContextKey = "userId"
	UsernameKey ContextKey = "username"
)
