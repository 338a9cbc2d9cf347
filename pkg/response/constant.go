package response

// Shared response messages and error codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode     = 400
	InternalServerErrorCode = 500
)
