package gemini

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIVersion is the API version used when none is configured
	DefaultAPIVersion = "v1beta"

	// RoleUser and RoleModel are the conversation roles understood by the API
	RoleUser  = "user"
	RoleModel = "model"
)
