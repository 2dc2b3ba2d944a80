package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"umsatz/internal/aggregate"
	"umsatz/internal/log"
)

// handleDashboard serves the aggregated payload for the query's
// filter. Results are cached per canonical filter key until the data
// is swapped or the TTL expires.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, facts, runID := s.data()

	filter, err := FilterFromQuery(r.URL.Query(), ds.Months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The run id is part of the key: a request that read the old
	// dataset and finishes computing after a swap inserts under the
	// old run's key and can never be served against the new run.
	key := resultCacheKey(runID, filter.Key())
	result, hit := s.resultCache.Get(key)
	if !hit {
		result = aggregate.Compute(ds, facts, filter)
		s.resultCache.Set(key, result)
	}

	slog.DebugContext(r.Context(), "Dashboard computed",
		log.FieldRunID, runID,
		log.FieldFilterKey, key,
		log.FieldComponent, log.ComponentCache,
		"cache_hit", hit,
		"headcount", result.Headcount)

	writeJSON(w, result)
}

// filtersPayload lists the distinct values each categorical filter
// accepts, plus the available month range and age bounds.
type filtersPayload struct {
	Departments []string `json:"departments"`
	Regions     []string `json:"regions"`
	Cities      []string `json:"cities"`
	Professions []string `json:"professions"`
	Months      []string `json:"months"`
	AgeMin      int      `json:"age_min"`
	AgeMax      int      `json:"age_max"`
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ds, _, _ := s.data()

	departments := map[string]bool{}
	regions := map[string]bool{}
	cities := map[string]bool{}
	professions := map[string]bool{}
	ageMin, ageMax := 0, 0
	for i, rec := range ds.Records {
		departments[rec.Department] = true
		regions[rec.Region] = true
		cities[rec.City] = true
		professions[rec.Profession] = true
		if i == 0 || rec.Age < ageMin {
			ageMin = rec.Age
		}
		if rec.Age > ageMax {
			ageMax = rec.Age
		}
	}

	payload := filtersPayload{
		Departments: sortedKeys(departments),
		Regions:     sortedKeys(regions),
		Cities:      sortedKeys(cities),
		Professions: sortedKeys(professions),
		Months:      make([]string, 0, len(ds.Months)),
		AgeMin:      ageMin,
		AgeMax:      ageMax,
	}
	for _, m := range ds.Months {
		payload.Months = append(payload.Months, m.String())
	}

	writeJSON(w, payload)
}

func resultCacheKey(runID int64, filterKey string) string {
	return strconv.FormatInt(runID, 10) + "|" + filterKey
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
