package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/httpserver/deps"
	"github.com/schemehub/schemehub/internal/logger"
)

type chatRequest struct {
	Msg  string `json:"msg"`
	Lang string `json:"lang"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat answers a chatbot query from the scheme catalog. The path is /get
// because that is what the portal frontend calls.
func Chat(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, d.Logger, apperr.E(apperr.KindValidation, "Invalid request body"))
			return
		}
		if req.Lang == "" {
			req.Lang = d.DefaultLang
		}

		answer, err := d.Chatbot.Respond(r.Context(), req.Msg, req.Lang)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Debug("chat answered", logger.String("lang", req.Lang))
		writeJSON(w, http.StatusOK, chatResponse{Response: answer})
	}
}
