package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arya-analytics/whoshere"
	"github.com/arya-analytics/whoshere/internal/telemetry"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type identifier interface {
	WhoAreYou(ctx context.Context) (whoshere.Identity, error)
}

type memberJSON struct {
	Name     string `json:"name"`
	HostPort string `json:"hostport"`
	Epoch    uint32 `json:"epoch"`
}

type membersJSON struct {
	Name    string       `json:"name"`
	Records []memberJSON `json:"records"`
}

func newRouter(node identifier, g prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", telemetry.Handler(g)).Methods(http.MethodGet)
	r.HandleFunc("/members", func(w http.ResponseWriter, req *http.Request) {
		id, err := node.WhoAreYou(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		res := membersJSON{Name: id.Name, Records: make([]memberJSON, len(id.Records))}
		for i, rec := range id.Records {
			res.Records[i] = memberJSON{Name: rec.Name, HostPort: string(rec.Address), Epoch: rec.Epoch}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}).Methods(http.MethodGet)
	return r
}
