// Command ldpathd is a thin HTTP front end over the ldpath processor: a
// single POST /select endpoint that evaluates a path expression against a
// posted graph snapshot and returns the selected terms as JSON.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/iand-tools/ldpath"
	"github.com/iand-tools/ldpath/internal/term"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// selectedTerm is the wire shape of one returned term, tagging its kind
// so a client can tell a literal from an IRI without re-parsing a bare
// string.
type selectedTerm struct {
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

func marshalTerms(terms []term.Term) []selectedTerm {
	out := make([]selectedTerm, len(terms))
	for i, t := range terms {
		switch v := t.(type) {
		case term.IRI:
			out[i] = selectedTerm{Kind: "iri", Value: v.Value}
		case term.Blank:
			out[i] = selectedTerm{Kind: "blank", Value: v.ID}
		case term.Literal:
			st := selectedTerm{Kind: "literal", Value: v.Lexical, Lang: v.Lang}
			if v.Datatype != nil {
				st.Datatype = v.Datatype.Value
			}
			out[i] = st
		}
	}
	return out
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()

	mux.HandleFunc("/select", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var body struct {
			Graph json.RawMessage `json:"graph"`
			Start string          `json:"start"`
			Path  string          `json:"path"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(body.Graph) == 0 {
			writeError(w, http.StatusBadRequest, "missing field: graph")
			return
		}
		if body.Start == "" {
			writeError(w, http.StatusBadRequest, "missing field: start")
			return
		}
		if body.Path == "" {
			writeError(w, http.StatusBadRequest, "missing field: path")
			return
		}

		p, err := ldpath.Load(bytes.NewReader(body.Graph))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid graph: %v", err))
			return
		}

		terms, err := p.SelectFromURI(r.Context(), body.Start, body.Path, nil)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Results []selectedTerm `json:"results"`
		}{Results: marshalTerms(terms)})
	})

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("ldpathd listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
