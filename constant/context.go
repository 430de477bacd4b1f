package constant

type ContextKey string

const (
	AdminSubjectKey ContextKey = "admin_subject"
	RequestIDKey    ContextKey = "request_id"
)

const AdminRole = "admin"
