package types

// Response is the internal result shape passed from services to handlers.
type Response struct {
	Code    int
	Message string
	Data    any
	Error   error
}

// ResponseAPI is the wire shape written to clients.
type ResponseAPI struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
