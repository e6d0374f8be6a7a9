package datasource

import (
	"context"
	"errors"
	"testing"
)

func TestNewsAPIMissingKey(t *testing.T) {
	n := NewNewsAPI("")

	if _, err := n.StockNews(context.Background(), "AAPL"); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("StockNews error = %v, want ErrMissingAPIKey", err)
	}
	if _, err := n.TopHeadlines(context.Background()); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("TopHeadlines error = %v, want ErrMissingAPIKey", err)
	}
}

func TestFMPMissingKey(t *testing.T) {
	f := NewFMP("")
	if _, err := f.HistoricalPrices(context.Background(), "AAPL", "", ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("HistoricalPrices error = %v, want ErrMissingAPIKey", err)
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Stocks <b>rally</b> today</p>", "Stocks rally today"},
		{"plain text", "plain text"},
		{"", ""},
		{"  <div> padded </div>  ", "padded"},
	}
	for _, tt := range tests {
		if got := cleanHTML(tt.in); got != tt.want {
			t.Errorf("cleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRSSDefaults(t *testing.T) {
	r := NewRSS(nil)
	if len(r.feeds) == 0 {
		t.Fatal("expected default feeds")
	}
}
