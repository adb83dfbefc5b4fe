package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cubeforge/kociemba/solver"
)

// solveResponse is the success body: the echoed scramble plus its
// solution.
type solveResponse struct {
	Scramble string `json:"scramble"`
	Solution string `json:"solution"`
}

// errorResponse is the failure body.
type errorResponse struct {
	Error    string `json:"error"`
	Scramble string `json:"scramble,omitempty"`
}

// Server wires a solver.Solver to the GET /solve HTTP surface.
type Server struct {
	solver *solver.Solver
	router *mux.Router
}

// NewServer builds an httpapi.Server around an already-constructed
// solver.Solver. Use mux so additional routes (health checks, metrics)
// can be registered without touching the handler below.
func NewServer(s *solver.Solver) *Server {
	srv := &Server{solver: s, router: mux.NewRouter()}
	srv.router.HandleFunc("/solve", srv.handleSolve).Methods(http.MethodGet)
	return srv
}

// ServeHTTP satisfies http.Handler, so a Server can be passed directly to
// http.ListenAndServe.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleSolve implements GET /solve?scramble=<moves>.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	scramble := r.URL.Query().Get("scramble")
	if scramble == "" && !r.URL.Query().Has("scramble") {
		log.Printf("request=%s error=missing scramble parameter", requestID)
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "a 'scramble' query parameter is required",
		})
		return
	}

	log.Printf("request=%s scramble=%q", requestID, scramble)

	solution, err := s.solver.SolveContext(r.Context(), scramble)
	if err != nil {
		status := statusFor(err)
		log.Printf("request=%s error=%v status=%d", requestID, err, status)
		writeJSON(w, status, errorResponse{Error: err.Error(), Scramble: scramble})
		return
	}

	log.Printf("request=%s solution=%q", requestID, solution)
	writeJSON(w, http.StatusOK, solveResponse{Scramble: scramble, Solution: solution})
}

// statusFor maps a solver error kind to an HTTP status:
// parse/invalid-scramble errors are 400, search failures are 500.
func statusFor(err error) int {
	if errors.Is(err, solver.ErrInvalidMove) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("httpapi: encoding response: %v", err)
	}
}
