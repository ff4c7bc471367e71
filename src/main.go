package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"crosswarped.com/xwsolver"
)

type SolveGridRequest struct {
	// Structure is the grid layout, one string per row; '_' marks a
	// fillable cell, anything else a blocked one.
	Structure      []string `json:"structure"`
	Words          []string `json:"words"`
	WordScope      string   `json:"wordScope"`
	IncludeObscure bool     `json:"includeObscure"`
}

type SolveGridResponse struct {
	Success bool `json:"success"`
	// Grid is the rendered solution, one string per row.
	Grid []string `json:"grid,omitempty"`
	// Slots maps each slot ("(row, col) direction : length") to its word.
	Slots map[string]string `json:"slots,omitempty"`
	Error string            `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string, includeObscure bool) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "xword-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	obscureValues := []string{"false"}
	if includeObscure {
		obscureValues = append(obscureValues, "true")
	}
	query := fmt.Sprintf("SELECT word_key FROM `xword-x.FirestoreQuery.all_words` WHERE scope = %q AND obscure IN (%s)", scope, strings.Join(obscureValues, ","))
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req SolveGridRequest) (*SolveGridResponse, error) {
	if len(req.Structure) == 0 {
		return nil, fmt.Errorf("structure must not be empty")
	}

	words := req.Words
	if req.WordScope != "" {
		scopeWords, err := getWords(ctx, req.WordScope, req.IncludeObscure)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		log.Info().Str("scope", req.WordScope).Int("words", len(scopeWords)).Msg("loaded scoped words")
		words = append(words, scopeWords...)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("words must not be empty")
	}

	width := 0
	for _, row := range req.Structure {
		if len(row) > width {
			width = len(row)
		}
	}
	structure := make([][]bool, len(req.Structure))
	for i, row := range req.Structure {
		structure[i] = make([]bool, width)
		for j, r := range row {
			structure[i][j] = r == '_'
		}
	}

	crossword, err := xwsolver.New(structure, words)
	if err != nil {
		return nil, fmt.Errorf("building crossword: %w", err)
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		log.Info().Dur("timeout", timeout).Msg("bounding solve by request deadline")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	assignment, err := xwsolver.NewSolver(crossword).Solve(ctx)
	if errors.Is(err, xwsolver.ErrNoSolution) {
		return &SolveGridResponse{
			Success: false,
			Error:   "no solution exists for the given structure and words",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	slots := make(map[string]string, len(assignment))
	for v, word := range assignment {
		slots[v.String()] = word
	}
	return &SolveGridResponse{
		Success: true,
		Grid:    strings.Split(crossword.Render(assignment), "\n"),
		Slots:   slots,
	}, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solveGrid(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SolveGridResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	response, err := execute(r.Context(), req)
	if err != nil {
		response = &SolveGridResponse{Success: false, Error: err.Error()}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-grid", solveGrid)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
