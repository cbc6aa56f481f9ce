package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/sentiment-flow/internal/logger"
	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
)

// keywordClient labels text by lookup and records every call
type keywordClient struct {
	calls  []string
	scores map[string]sentiment.Score
	err    error
}

func (k *keywordClient) Analyze(ctx context.Context, text string) (sentiment.Score, error) {
	k.calls = append(k.calls, text)
	if k.err != nil {
		return sentiment.Score{}, k.err
	}
	return k.scores[text], nil
}

func newClient() *keywordClient {
	return &keywordClient{scores: map[string]sentiment.Score{
		"love it":   {Label: sentiment.LabelPositive, Positive: 0.9, Neutral: 0.1, Negative: 0},
		"it is ok":  {Label: sentiment.LabelNeutral, Positive: 0.2, Neutral: 0.7, Negative: 0.1},
		"hate it":   {Label: sentiment.LabelNegative, Positive: 0, Neutral: 0.1, Negative: 0.9},
		"great day": {Label: sentiment.LabelPositive, Positive: 0.8, Neutral: 0.2, Negative: 0},
		"meh, fine": {Label: sentiment.LabelMixed, Positive: 0.4, Neutral: 0.2, Negative: 0.4},
	}}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tweets.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func testLogger() logger.Logger {
	return logger.NewWithOutput(io.Discard, "info", "text")
}

func TestAugmentFull(t *testing.T) {
	in := writeFile(t, "id,clean_tweet\n1,hate it\n2,love it\n3,it is ok\n4,great day\n5,\"meh, fine\"\n")
	out := filepath.Join(t.TempDir(), "tweetresult.csv")
	client := newClient()

	n, err := New(client, testLogger()).Augment(context.Background(), in, out, ModeFull)
	if err != nil {
		t.Fatalf("Augment() error = %v", err)
	}
	if n != 5 {
		t.Errorf("Augment() = %d, want 5", n)
	}

	// one call per row, in input order
	wantCalls := []string{"hate it", "love it", "it is ok", "great day", "meh, fine"}
	if diff := cmp.Diff(wantCalls, client.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}

	want := [][]string{
		{"id", "clean_tweet", "sentiment_summary", "positive", "neutral", "negative"},
		{"2", "love it", "positive", "0.9", "0.1", "0"},
		{"4", "great day", "positive", "0.8", "0.2", "0"},
		{"3", "it is ok", "neutral", "0.2", "0.7", "0.1"},
		{"1", "hate it", "negative", "0", "0.1", "0.9"},
		{"5", "meh, fine", "mixed", "0.4", "0.2", "0.4"},
	}
	if diff := cmp.Diff(want, readRows(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestAugmentSummary(t *testing.T) {
	in := writeFile(t, "tweet,user\nhate it,a\nlove it,b\n")
	out := filepath.Join(t.TempDir(), "tweetsummary.csv")

	if _, err := New(newClient(), testLogger()).Augment(context.Background(), in, out, ModeSummary); err != nil {
		t.Fatalf("Augment() error = %v", err)
	}

	want := [][]string{
		{"tweet", "user", "sentiment_summary"},
		{"love it", "b", "positive"},
		{"hate it", "a", "negative"},
	}
	if diff := cmp.Diff(want, readRows(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestAugmentMissingColumn(t *testing.T) {
	in := writeFile(t, "tweet\nlove it\n")
	out := filepath.Join(t.TempDir(), "out.csv")
	client := newClient()

	_, err := New(client, testLogger()).Augment(context.Background(), in, out, ModeFull)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Augment() error = %v, want ErrMissingColumn", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("client called %d times before column check", len(client.calls))
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output should not be created")
	}
}

func TestAugmentEmptyInput(t *testing.T) {
	in := writeFile(t, "")
	_, err := New(newClient(), testLogger()).Augment(context.Background(), in, filepath.Join(t.TempDir(), "out.csv"), ModeFull)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Augment() error = %v, want ErrEmptyInput", err)
	}
}

func TestAugmentHeaderOnly(t *testing.T) {
	in := writeFile(t, "clean_tweet\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	n, err := New(newClient(), testLogger()).Augment(context.Background(), in, out, ModeFull)
	if err != nil {
		t.Fatalf("Augment() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Augment() = %d, want 0", n)
	}
	want := [][]string{{"clean_tweet", "sentiment_summary", "positive", "neutral", "negative"}}
	if diff := cmp.Diff(want, readRows(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestAugmentServiceError(t *testing.T) {
	in := writeFile(t, "clean_tweet\nlove it\n")
	out := filepath.Join(t.TempDir(), "out.csv")
	client := newClient()
	client.err = &sentiment.ServiceError{Provider: "fake", Err: errors.New("unauthorized")}

	_, err := New(client, testLogger()).Augment(context.Background(), in, out, ModeFull)
	var svcErr *sentiment.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("Augment() error = %v, want *sentiment.ServiceError", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output should not be created on service failure")
	}
}

func TestAugmentShortRow(t *testing.T) {
	in := writeFile(t, "id,clean_tweet\n1\n")
	if _, err := New(newClient(), testLogger()).Augment(context.Background(), in, filepath.Join(t.TempDir(), "out.csv"), ModeFull); err == nil {
		t.Error("Augment() should fail for a row without the text column")
	}
}

func TestAugmentMissingInput(t *testing.T) {
	if _, err := New(newClient(), testLogger()).Augment(context.Background(), "missing.csv", filepath.Join(t.TempDir(), "out.csv"), ModeFull); err == nil {
		t.Error("Augment() should fail for a missing input file")
	}
}

func TestAugmentBareQuotes(t *testing.T) {
	in := writeFile(t, "id,clean_tweet\n1,hate it\n2,she said \"love it\n")
	out := filepath.Join(t.TempDir(), "out.csv")
	client := &keywordClient{scores: map[string]sentiment.Score{
		`she said "love it`: {Label: sentiment.LabelPositive, Positive: 1},
		"hate it":           {Label: sentiment.LabelNegative, Negative: 1},
	}}

	n, err := New(client, testLogger()).Augment(context.Background(), in, out, ModeFull)
	if err != nil {
		t.Fatalf("Augment() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Augment() = %d, want 2", n)
	}

	want := [][]string{
		{"id", "clean_tweet", "sentiment_summary", "positive", "neutral", "negative"},
		{"2", `she said "love it`, "positive", "1", "0", "0"},
		{"1", "hate it", "negative", "0", "0", "1"},
	}
	if diff := cmp.Diff(want, readRows(t, out)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
