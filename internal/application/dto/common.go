package dto

// ErrorResponse cuerpo de error HTTP. Problems enumera los identificadores
// ofensivos cuando la validación agregó varias violaciones.
type ErrorResponse struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Problems []string `json:"problems,omitempty"`
}

// Response respuesta genérica de éxito.
type Response struct {
	Success bool `json:"success"`
}
