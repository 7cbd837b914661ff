package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/handoff/pkg/buildinfo"
	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/measure"
	"github.com/matzehuels/handoff/pkg/pipeline"
	"github.com/matzehuels/handoff/pkg/scene"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type rectsResponse struct {
	Rects []geom.Rect `json:"rects"`
}

type measureRequest struct {
	Document *scene.Document   `json:"document"`
	Selected pipeline.Selector `json:"selected"`
	Target   pipeline.Selector `json:"target"`
}

// measureResponse extends measure.Result with the resolved pair so clients
// can check what was measured.
type measureResponse struct {
	measure.Result
	Relation string    `json:"relation"`
	Selected geom.Rect `json:"selected"`
	Target   geom.Rect `json:"target"`
	Page     geom.Page `json:"page"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleRects(w http.ResponseWriter, r *http.Request) {
	doc, err := scene.ReadJSON(r.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	idx, err := s.runner.Extract(r.Context(), doc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rectsResponse{Rects: idx.Rects()})
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	var req measureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Document == nil || req.Document.Nodes == nil {
		writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "request has no document nodes"))
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document: req.Document,
		Selected: req.Selected,
		Target:   req.Target,
		Page:     s.opts.Page,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, measureResponse{
		Result:   res.Marks,
		Relation: res.Relation,
		Selected: res.Selected,
		Target:   res.Target,
		Page:     res.Page,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
