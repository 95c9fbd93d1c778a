package awindomain

// ErrorResponse representa o corpo de erro retornado pela API da Awin
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

func (e *ErrorResponse) Detail() string {
	switch {
	case e.Description != "":
		return e.Description
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}
