// Package api wires the JSON HTTP surface. Route registration lives in the
// handlers subpackage; this file assembles the router.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/api/handlers"
)

// Handler builds the full router: liveness probe plus the /v1 API.
func Handler(deps handlers.Deps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	handlers.Register(v1, deps)
	return r
}
