package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Not found",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}

	ErrAuthenticationRequired = ErrorResponse{
		Status:  "error",
		Error:   "authentication_required",
		Details: "Bearer token required",
	}

	ErrAdminRequired = ErrorResponse{
		Status:  "error",
		Error:   "admin_required",
		Details: "Admin access required",
	}
)
