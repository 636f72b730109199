package response

type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string            `json:"status"`
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ListResponse is the paginated envelope for list endpoints.
type ListResponse struct {
	Count   int         `json:"count"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Results interface{} `json:"results"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func ErrorResponseWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   err,
		Details: details,
	}
}

func ValidationErrorResponse(fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   "validation_error",
		Details: "Invalid request data",
		Fields:  fields,
	}
}
