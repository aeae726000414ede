package handlers

import (
	"encoding/json"
	"net/http"
)

// message maps message into JSON formatted string
func message(message string) map[string]interface{} {
	return map[string]interface{}{"message": message}
}

// dataMessage maps data and message into JSON formatted string
func dataMessage(data interface{}, message string) map[string]interface{} {
	return map[string]interface{}{"message": message, "data": data}
}

// respond encodes a JSON response to a http request
func respond(w http.ResponseWriter, data map[string]interface{}) {
	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
