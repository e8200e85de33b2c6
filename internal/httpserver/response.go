package httpserver

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON сериализует произвольный ответ с нужным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError возвращает ошибку в формате {"error": ...}.
func WriteError(w http.ResponseWriter, status int, errText string) {
	WriteJSON(w, status, errorResponse{Error: errText})
}

// WriteErrorDetail добавляет к ошибке поле message с деталями сбоя.
func WriteErrorDetail(w http.ResponseWriter, status int, errText, message string) {
	WriteJSON(w, status, errorResponse{Error: errText, Message: message})
}
