package model

// Response is the envelope for every API response.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewErrorResponse builds a failure envelope. Code carries the error kind.
func NewErrorResponse(message, code string) Response {
	return Response{Success: false, Message: message, Code: code}
}

// NewSuccessResponse builds a success envelope with optional payload.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}
