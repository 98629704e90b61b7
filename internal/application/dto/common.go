package dto

// Response es el sobre fijo de todas las respuestas de la API:
// {success, message, data?, error?}. Los handlers construyen este struct;
// no se mutan objetos de respuesta en runtime.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
