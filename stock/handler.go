package stock

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"isinscraper/config"

	"github.com/gorilla/mux"
)

// CompanyResponse is the JSON body returned for a company lookup
type CompanyResponse struct {
	config.Company
	*Result
}

type errorResponse struct {
	Error string `json:"error"`
}

type companyHandler struct {
	registry *config.Registry
	scraper  *ScreenerScraper
	logger   *slog.Logger
}

// NewRouter exposes company lookups over HTTP:
//
//	GET /company/{isin}
func NewRouter(registry *config.Registry, scraper *ScreenerScraper, logger *slog.Logger) *mux.Router {
	h := &companyHandler{registry: registry, scraper: scraper, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/company/{isin}", h.getCompany).Methods(http.MethodGet)
	return router
}

func (h *companyHandler) getCompany(w http.ResponseWriter, r *http.Request) {
	isin := config.NormalizeISIN(mux.Vars(r)["isin"])

	company, ok := h.registry.Lookup(isin)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "company for ISIN " + isin + " not found"})
		return
	}

	result, err := h.scraper.Scrape(company)
	if err != nil {
		h.logger.Error("scrape failed", "isin", isin, "err", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to retrieve data from Screener.in for " + company.Name})
		return
	}

	writeJSON(w, http.StatusOK, CompanyResponse{Company: company, Result: result})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Error marshaling to JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonData)
}
