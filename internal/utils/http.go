// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lerkeveld/underground/models"
)

// WriteJSON writes data as a JSON body with statusCode. When data cannot be
// marshaled nothing but a 500 is written and the marshal error is returned.
//
//	WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse]. fieldErrors is omitted from
// the body when nil.
func WriteError(w http.ResponseWriter, statusCode int, msg string, fieldErrors any) {
	_, _ = WriteJSON(w, models.ErrorResponse{Msg: msg, Errors: fieldErrors}, statusCode)
}
