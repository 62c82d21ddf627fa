package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "Error! invalid request format",
		Details: "Invalid request format",
	}

	ErrIDRequired = ErrorResponse{
		Status: "error",
		Error:  "Error! id must not be empty",
		Fields: []string{"id"},
	}
)
