// Copyright 2020 Drone.IO Inc. All rights reserved.
// Use of this source code is governed by the Polyform License
// that can be found in the LICENSE file.

// Package httprender writes JSON responses.
package httprender

import (
	"encoding/json"
	"net/http"

	"github.com/sokoverse/level-predictor/types"
)

func JSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

// Unavailable writes {"error": message} with status 503.
func Unavailable(w http.ResponseWriter, message string) {
	JSON(w, types.ErrorResponse{Error: message}, http.StatusServiceUnavailable)
}
