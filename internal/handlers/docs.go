package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"
)

//go:embed openapi.json
var openAPIDoc []byte

// apiDocs отдаёт OpenAPI-описание с servers.url = текущий префикс маршрутов
func apiDocs(basePath string) (http.HandlerFunc, error) {
	var doc map[string]any
	if err := json.Unmarshal(openAPIDoc, &doc); err != nil {
		return nil, err
	}
	url := basePath
	if url == "" {
		url = "/"
	}
	doc["servers"] = []map[string]string{{"url": url}}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}, nil
}
