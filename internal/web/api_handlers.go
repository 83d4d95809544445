package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/evcraddock/movie-notes/internal/form"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiMethodNotAllowed answers API paths reached with an unsupported method.
func (s *Server) apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apiError(w, "method not allowed", http.StatusMethodNotAllowed)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// addCommentRequest is the body of POST /api/comments.
// Note is a pointer so a missing rating reads as required, not as zero.
type addCommentRequest struct {
	Comment          string `json:"comment"`
	Note             *int   `json:"note"`
	AcceptConditions bool   `json:"accept_conditions"`
}

func (req addCommentRequest) draft() form.Draft {
	d := form.Draft{Comment: req.Comment, AcceptConditions: req.AcceptConditions}
	if req.Note != nil {
		d.Note = strconv.Itoa(*req.Note)
	}
	return d
}

// validationResponse is returned with 422 when a submission is rejected.
type validationResponse struct {
	Error  string           `json:"error"`
	Fields form.FieldErrors `json:"fields"`
}

func (s *Server) apiListComments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(RevisionHeader, strconv.FormatInt(s.Revision(), 10))
	apiJSON(w, s.store.All(), http.StatusOK)
}

func (s *Server) apiAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sub, errs := form.Validate(req.draft())
	if errs != nil {
		apiJSON(w, validationResponse{Error: "validation failed", Fields: errs}, http.StatusUnprocessableEntity)
		return
	}

	c := s.store.Add(sub.Comment, sub.Note)
	apiJSON(w, c, http.StatusCreated)
}

func (s *Server) apiGetComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseCommentID(r)
	if err != nil {
		apiError(w, "invalid comment ID", http.StatusBadRequest)
		return
	}

	c, ok := s.store.Get(id)
	if !ok {
		apiError(w, "comment not found", http.StatusNotFound)
		return
	}
	apiJSON(w, c, http.StatusOK)
}

// apiDeleteComment succeeds whether or not the comment existed.
func (s *Server) apiDeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseCommentID(r)
	if err != nil {
		apiError(w, "invalid comment ID", http.StatusBadRequest)
		return
	}

	s.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) apiMovie(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, s.loader.Snapshot(), http.StatusOK)
}
