// Package gateway serves the portrait API as JSON over HTTP for browser
// clients. Routes mirror the gRPC methods.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/crewportrait/internal/platform/errors"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
)

// maxBodyBytes bounds request bodies; a full crew of characters is well
// under this.
const maxBodyBytes = 1 << 20

// NewHandler routes the JSON API onto svc.
func NewHandler(svc api.API) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/generate-crew", post(svc.GenerateCrew))
	mux.HandleFunc("POST /api/characters/random", post(svc.GenerateCharacter))
	mux.HandleFunc("POST /api/characters/validate", post(svc.ValidateCharacter))
	mux.HandleFunc("POST /api/characters/resolve", post(svc.ResolveCharacter))
	mux.HandleFunc("GET /api/characters/default", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		resp, err := svc.DefaultCharacter(r.Context(), api.DefaultCharacterRequest{Gender: q.Get("gender"), BaseURL: q.Get("baseUrl")})
		respond(w, r, resp, err)
	})
	mux.HandleFunc("GET /api/layers", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		resp, err := svc.ListLayerOptions(r.Context(), api.ListLayerOptionsRequest{Layer: q.Get("layer"), Gender: q.Get("gender")})
		respond(w, r, resp, err)
	})
	mux.HandleFunc("GET /api/postcards/layout", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		count, err := queryInt(q.Get("count"), 1)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "count must be a number")
			return
		}
		resp, err := svc.GetPostcardLayout(r.Context(), api.GetPostcardLayoutRequest{Color: q.Get("color"), Count: count})
		respond(w, r, resp, err)
	})
	mux.HandleFunc("GET /api/crews/{id}", func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.GetCrew(r.Context(), api.GetCrewRequest{CrewID: r.PathValue("id")})
		respond(w, r, resp, err)
	})
	mux.HandleFunc("GET /api/crew-members", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pageSize, err := queryInt(q.Get("pageSize"), 0)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "pageSize must be a number")
			return
		}
		resp, err := svc.ListCrewMembers(r.Context(), api.ListCrewMembersRequest{
			Filter:    q.Get("filter"),
			PageSize:  pageSize,
			PageToken: q.Get("pageToken"),
		})
		respond(w, r, resp, err)
	})
	return mux
}

func post[Req, Resp any](call func(ctx context.Context, req Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, http.StatusBadRequest, "request body must be JSON")
			return
		}
		resp, err := call(r.Context(), req)
		respond(w, r, resp, err)
	}
}

func respond(w http.ResponseWriter, r *http.Request, resp any, err error) {
	if err != nil {
		status := apperrors.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		}
		writeError(w, r, status, apperrors.UserMessage(err, r.Header.Get("Accept-Language")))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func queryInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
