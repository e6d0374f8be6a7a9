// Package history persists a bounded per-ticker time series of sentiment
// scores in a single JSON document.
//
// The store is deliberately stateless between calls: every operation
// re-reads the document from disk and Append rewrites it in full. That
// trades throughput for simplicity — there is no in-memory copy that can
// diverge from disk across restarts or crashes. Concurrent appends from
// other processes remain last-writer-wins over the whole document.
package history

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/seenimoa/stockmood/pkg/models"
	"github.com/seenimoa/stockmood/pkg/utils"
)

// MaxSamplesPerTicker bounds each ticker's history; older samples are
// discarded first.
const MaxSamplesPerTicker = 30

// DefaultFile is the default location of the history document.
const DefaultFile = "historical_sentiment_data.json"

// Store reads and writes the shared history document. The mutex makes
// appends atomic relative to each other within this process only; it is
// never held across anything but the store's own read-modify-write.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewStore creates a store backed by the document at path.
// An empty path falls back to DefaultFile in the working directory.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path, now: time.Now}
}

// Load reads the full history document. A missing, empty, or corrupt
// document yields an empty map; load problems never propagate to the
// caller. Ticker entries that are not well-formed sample lists are
// coerced to empty lists.
func (s *Store) Load() map[string][]models.HistoricalSample {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("history: read %s: %v", s.path, err)
		}
		return map[string][]models.HistoricalSample{}
	}
	if len(raw) == 0 {
		return map[string][]models.HistoricalSample{}
	}

	// Decode each ticker's value independently so one malformed entry
	// does not discard the rest of the document.
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("history: corrupt document %s: %v", s.path, err)
		return map[string][]models.HistoricalSample{}
	}

	data := make(map[string][]models.HistoricalSample, len(doc))
	for ticker, val := range doc {
		var samples []models.HistoricalSample
		if err := json.Unmarshal(val, &samples); err != nil {
			samples = []models.HistoricalSample{}
		}
		if samples == nil {
			samples = []models.HistoricalSample{}
		}
		data[ticker] = samples
	}
	return data
}

// Append records a new sample for ticker, stamped with the current UTC
// time, and trims the ticker's history to the most recent
// MaxSamplesPerTicker entries. Save failures are logged and swallowed:
// the sentiment result that triggered the append is still valid and must
// reach the caller.
func (s *Store) Append(ticker string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.Load()
	key := utils.NormalizeTicker(ticker)

	samples := append(data[key], models.HistoricalSample{
		Timestamp: utils.UTCTimestamp(s.now()),
		Score:     score,
	})
	if len(samples) > MaxSamplesPerTicker {
		samples = samples[len(samples)-MaxSamplesPerTicker:]
	}
	data[key] = samples

	if err := s.save(data); err != nil {
		log.Printf("history: save %s: %v", s.path, err)
	}
}

// Query returns the ticker's history, oldest first. Unknown tickers
// yield an empty slice.
func (s *Store) Query(ticker string) []models.HistoricalSample {
	data := s.Load()
	samples, ok := data[utils.NormalizeTicker(ticker)]
	if !ok {
		return []models.HistoricalSample{}
	}
	return samples
}

// save rewrites the whole document. Indented JSON keeps it inspectable
// by hand, matching the human-readable persistence contract.
func (s *Store) save(data map[string][]models.HistoricalSample) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
