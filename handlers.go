package bikeflow

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type healthResponse struct {
	Status     string `json:"status"`
	TotalTrips int    `json:"totalTrips"`
	Synthetic  bool   `json:"synthetic"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		TotalTrips: a.Cache.TotalTrips,
		Synthetic:  a.Cache.Synthetic,
	})
}

// handleFrame advances the layout by one step and returns the projected
// frame. The renderer calls this at most once per display frame.
func (a *App) handleFrame(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.NextFrame())
}

func (a *App) handleStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Summary())
}

type controlsRequest struct {
	Member       *string  `json:"member"`
	Month        *string  `json:"month"`
	Percentile   *int     `json:"percentile"`
	HideIsolated *bool    `json:"hideIsolated"`
	ThreeD       *bool    `json:"threeD"`
	Zoom         *float64 `json:"zoom"`
}

func (a *App) handleControls(w http.ResponseWriter, r *http.Request) {
	var req controlsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid controls payload")
		return
	}
	if req.Member != nil {
		if err := a.SetMemberFilter(*req.Member); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Month != nil {
		if err := a.SetMonthFilter(*req.Month); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Percentile != nil {
		a.SetPercentile(*req.Percentile)
	}
	if req.HideIsolated != nil {
		a.SetHideIsolated(*req.HideIsolated)
	}
	if req.ThreeD != nil {
		a.SetThreeD(*req.ThreeD)
	}
	if req.Zoom != nil {
		a.SetZoom(*req.Zoom)
	}
	writeJSON(w, http.StatusOK, a.CurrentFrame())
}

type selectRequest struct {
	Station string `json:"station"`
}

func (a *App) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Station == "" {
		writeError(w, http.StatusBadRequest, "station required")
		return
	}
	if err := a.SelectStation(req.Station); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a.CurrentFrame())
}

func (a *App) handleBack(w http.ResponseWriter, r *http.Request) {
	a.Back()
	writeJSON(w, http.StatusOK, a.CurrentFrame())
}

type rotateRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (a *App) handleRotate(w http.ResponseWriter, r *http.Request) {
	var req rotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid rotate payload")
		return
	}
	a.Rotate(req.DX, req.DY)
	writeJSON(w, http.StatusOK, a.CurrentFrame())
}

type pinRequest struct {
	Station string  `json:"station"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

func (a *App) handlePin(w http.ResponseWriter, r *http.Request) {
	var req pinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Station == "" {
		writeError(w, http.StatusBadRequest, "station required")
		return
	}
	if !a.Pin(req.Station, req.X, req.Y) {
		writeError(w, http.StatusNotFound, "station not in current layout")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "pinned"})
}

func (a *App) handleRelease(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Station == "" {
		writeError(w, http.StatusBadRequest, "station required")
		return
	}
	if !a.Release(req.Station) {
		writeError(w, http.StatusNotFound, "station not in current layout")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "released"})
}
