package response

const (
	DefaultErrorMessage = "Something went wrong"
)
