package stock

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"isinscraper/config"

	"github.com/PuerkitoBio/goquery"
)

// UserAgent is sent with every page request
const UserAgent = "Mozilla/5.0"

// AcceptEncoding lists every encoding readBody can undo. Setting it ourselves
// also stops the transport from decoding gzip behind readBody's back.
const AcceptEncoding = "gzip, deflate, br, zstd"

// ErrUnexpectedStatus is wrapped by FetchError when Screener answers with
// anything other than 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Stage is where a scrape currently is, or where it stopped.
type Stage int

const (
	StageIdle Stage = iota
	StageRequesting
	StageParsing
	StageExtracted
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageRequesting:
		return "requesting"
	case StageParsing:
		return "parsing"
	case StageExtracted:
		return "extracted"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// FetchError describes a scrape that produced no data
type FetchError struct {
	Stage      Stage // stage the failure happened in
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %v %d", e.Stage, e.URL, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type ScreenerConfig struct {
	BaseURL    string       // defaults to config.DefaultBaseURL
	HTTPClient *http.Client // defaults to a plain client with transport defaults
}

// ScreenerScraper fetches and extracts Screener company pages
type ScreenerScraper struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewScreenerScraper creates a new scraper instance
func NewScreenerScraper(cfg ScreenerConfig, logger *slog.Logger) *ScreenerScraper {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScreenerScraper{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// CompanyURL returns the page address for a ticker code
func (s *ScreenerScraper) CompanyURL(code string) string {
	return fmt.Sprintf("%s/%s/", s.baseURL, url.PathEscape(code))
}

// Scrape issues a single GET for the company's page and extracts it. It fails
// only when the page could not be fetched; missing sections just leave parts
// of the Result empty.
func (s *ScreenerScraper) Scrape(company config.Company) (*Result, error) {
	pageURL := s.CompanyURL(company.Code)
	log := s.logger.With("isin", company.ISIN, "code", company.Code)

	fail := func(stage Stage, status int, err error) (*Result, error) {
		log.Debug("scrape stopped", "stage", StageFailed, "at", stage)
		return nil, &FetchError{Stage: stage, URL: pageURL, StatusCode: status, Err: err}
	}

	log.Debug("scrape stage", "stage", StageRequesting)
	log.Info("fetching company page", "url", pageURL)

	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return fail(StageRequesting, 0, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept-Encoding", AcceptEncoding)

	resp, err := s.client.Do(req)
	if err != nil {
		return fail(StageRequesting, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fail(StageRequesting, resp.StatusCode, ErrUnexpectedStatus)
	}

	body, err := readBody(resp)
	if err != nil {
		return fail(StageRequesting, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	log.Debug("scrape stage", "stage", StageParsing, "bytes", len(body))
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return fail(StageParsing, resp.StatusCode, fmt.Errorf("failed to parse HTML: %w", err))
	}

	result := Extract(doc)
	for _, note := range result.Notes {
		log.Warn(note)
	}
	log.Debug("scrape stage", "stage", StageExtracted,
		"metrics", result.Metrics.Len(), "pros", len(result.Pros), "cons", len(result.Cons))

	return result, nil
}
