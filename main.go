package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/jsnanigans/indentscore/pkg/indentscore"
)

// FileUpdateRequest defines the structure for incoming JSON requests.
type FileUpdateRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ScoreResponse lists the hunks between the previous and the current content
// of a file, each scored where it sits.
type ScoreResponse struct {
	Filename string                   `json:"filename"`
	Initial  bool                     `json:"initial"`
	Hunks    []indentscore.HunkReport `json:"hunks"`
}

var (
	// fileCache stores the last known content for each file.
	fileCache = make(map[string]string)
	// cacheMutex protects concurrent access to fileCache.
	cacheMutex sync.RWMutex
)

// scoreHandler diffs the posted content against the cached content of the
// same file and responds with the scored hunks.
func scoreHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req FileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Filename == "" {
		http.Error(w, "Filename cannot be empty", http.StatusBadRequest)
		return
	}

	cacheMutex.Lock()
	oldContent, exists := fileCache[req.Filename]
	fileCache[req.Filename] = req.Content
	cacheMutex.Unlock()

	resp := ScoreResponse{Filename: req.Filename, Initial: !exists}
	if exists {
		resp.Hunks = indentscore.AnalyzeHunks(oldContent, req.Content)
		log.Printf("Scored %d hunks in %s", len(resp.Hunks), req.Filename)
	} else {
		log.Printf("Caching initial content for %s", req.Filename)
	}
	if resp.Hunks == nil {
		resp.Hunks = []indentscore.HunkReport{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("WARN: writing response for %s: %v", req.Filename, err)
	}
}

func main() {
	http.HandleFunc("/score", scoreHandler)

	port := "8080"
	log.Printf("Starting server on localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
