package scraper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dominionleague/internal/assets"
	"dominionleague/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFetcher remembers every call and fails the calls listed in failOn.
type recordingFetcher struct {
	calls  []fetchCall
	failOn map[int]error
}

type fetchCall struct {
	dest string
	url  string
}

func (f *recordingFetcher) Download(_ context.Context, dest, url string) error {
	f.calls = append(f.calls, fetchCall{dest: dest, url: url})
	if err, ok := f.failOn[len(f.calls)]; ok {
		return err
	}
	return nil
}

func newTestScraper(t *testing.T, fetcher Fetcher, opts Options) (*Scraper, *assets.Resolver) {
	t.Helper()
	resolver, err := assets.NewResolver(t.TempDir())
	require.NoError(t, err)
	return New(resolver, fetcher, opts, nil), resolver
}

func testSet(t *testing.T, name string, editions []int, url string) catalog.Set {
	t.Helper()
	urls := make([]string, len(editions))
	for i := range urls {
		urls[i] = url
	}
	set, err := catalog.NewSet(1, name, editions, urls, urls, urls)
	require.NoError(t, err)
	return set
}

func TestScrapeCard_EndToEnd(t *testing.T) {
	srv := newAssetServer(t)
	s, resolver := newTestScraper(t, NewDownloader(DownloaderOptions{}, nil), Options{})

	card := catalog.Card{
		ID:       1,
		Name:     "test name",
		Editions: []int{13, 21},
		ArtURL:   []string{srv.URL + "/ok.svg", srv.URL + "/ok.svg"},
	}

	require.NoError(t, s.ScrapeCard(context.Background(), &card))

	for _, edition := range card.Editions {
		path, err := resolver.Path(&card, edition, assets.KindCardArt)
		require.NoError(t, err)

		got, err := os.ReadFile(path)
		require.NoError(t, err, "edition %d", edition)
		assert.Equal(t, sampleBody, got)
	}
}

func TestScrapeCard_FailsFast(t *testing.T) {
	fetcher := &recordingFetcher{failOn: map[int]error{1: &FetchError{URL: "a", StatusCode: 500}}}
	s, _ := newTestScraper(t, fetcher, Options{})

	card := catalog.Card{Name: "Cellar", Editions: []int{1, 2}, ArtURL: []string{"a", "b"}}

	err := s.ScrapeCard(context.Background(), &card)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Len(t, fetcher.calls, 1)
	assert.Contains(t, err.Error(), "Cellar edition 1 art")
}

func TestScrapeCard_MisalignedArt(t *testing.T) {
	fetcher := &recordingFetcher{}
	s, _ := newTestScraper(t, fetcher, Options{})

	card := catalog.Card{Name: "Moat", Editions: []int{1, 2}, ArtURL: []string{"a"}}

	assert.ErrorIs(t, s.ScrapeCard(context.Background(), &card), catalog.ErrMisalignedArt)
	assert.Empty(t, fetcher.calls)
}

func TestScrapeSet_OrderAndPaths(t *testing.T) {
	fetcher := &recordingFetcher{}
	s, resolver := newTestScraper(t, fetcher, Options{})

	set, err := catalog.NewSet(1, "test name'one", []int{13, 21},
		[]string{"cover13", "cover21"},
		[]string{"rules13", "rules21"},
		[]string{"icon13", "icon21"})
	require.NoError(t, err)

	require.NoError(t, s.ScrapeSet(context.Background(), &set))

	var urls []string
	for _, c := range fetcher.calls {
		urls = append(urls, c.url)
	}
	assert.Equal(t, []string{"cover13", "rules13", "icon13", "cover21", "rules21", "icon21"}, urls)

	wantCover, err := resolver.Path(&set, 21, assets.KindSetCover)
	require.NoError(t, err)
	assert.Equal(t, wantCover, fetcher.calls[3].dest)
}

func TestScrapeSet_FailsFast(t *testing.T) {
	fetcher := &recordingFetcher{failOn: map[int]error{2: &WriteError{Path: "p", Err: errors.New("disk full")}}}
	s, _ := newTestScraper(t, fetcher, Options{})
	set := testSet(t, "Seaside", []int{1, 2}, "u")

	err := s.ScrapeSet(context.Background(), &set)
	assert.ErrorIs(t, err, ErrWrite)
	assert.Len(t, fetcher.calls, 2)
}

func TestScrapeSet_RejectsInconsistentSet(t *testing.T) {
	fetcher := &recordingFetcher{}
	s, _ := newTestScraper(t, fetcher, Options{})

	set := catalog.Set{Name: "hand built", Editions: []int{1}, CoverArtURL: []string{"c"}}

	assert.ErrorIs(t, s.ScrapeSet(context.Background(), &set), catalog.ErrConstruction)
	assert.Empty(t, fetcher.calls)
}

func TestScrapeSets_PartialFailure(t *testing.T) {
	srv := newAssetServer(t)
	s, resolver := newTestScraper(t, NewDownloader(DownloaderOptions{}, nil), Options{})

	sets := []catalog.Set{
		testSet(t, "First", []int{1}, srv.URL+"/ok.svg"),
		testSet(t, "Second", []int{1}, unreachableURL(t)),
		testSet(t, "Third", []int{1, 2}, srv.URL+"/ok.svg"),
	}

	summary := s.ScrapeSets(context.Background(), sets)

	assert.Equal(t, "2/3", summary.String())
	assert.False(t, summary.OK())
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "Second", summary.Failures[0].Name)
	assert.ErrorIs(t, summary.Failures[0].Err, ErrFetch)

	for _, kind := range assets.SetKinds {
		first, err := resolver.Path(&sets[0], 1, kind)
		require.NoError(t, err)
		assert.FileExists(t, first)

		third, err := resolver.Path(&sets[2], 2, kind)
		require.NoError(t, err)
		assert.FileExists(t, third)
	}
}

func TestScrapeCards_SkipExisting(t *testing.T) {
	fetcher := &recordingFetcher{}
	s, resolver := newTestScraper(t, fetcher, Options{SkipExisting: true})

	cards := []catalog.Card{
		{Name: "Copper", Editions: []int{1, 2}, ArtURL: []string{"c1", "c2"}},
	}
	existing, err := resolver.Path(&cards[0], 1, assets.KindCardArt)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(resolver.CardDir(), 0755))
	require.NoError(t, os.WriteFile(existing, []byte("already here"), 0644))

	summary := s.ScrapeCards(context.Background(), cards)

	assert.Equal(t, "1/1", summary.String())
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "c2", fetcher.calls[0].url)
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, _ := newTestScraper(t, &recordingFetcher{}, Options{})

	var seen []string
	summary := RunBatch(ctx, s.logger, []string{"a", "b", "c"},
		func(v string) string { return v },
		func(_ context.Context, v string) error {
			seen = append(seen, v)
			if v == "a" {
				cancel()
			}
			return nil
		})

	assert.Equal(t, []string{"a"}, seen)
	assert.Equal(t, "1/3", summary.String())
}

func TestRunBatch_NilLogger(t *testing.T) {
	var summary Summary
	require.NotPanics(t, func() {
		summary = RunBatch(context.Background(), nil, []string{"a", "b"},
			func(v string) string { return v },
			func(_ context.Context, v string) error {
				if v == "b" {
					return errors.New("boom")
				}
				return nil
			})
	})

	assert.Equal(t, "1/2", summary.String())
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "b", summary.Failures[0].Name)
}

func TestRunBatch_Empty(t *testing.T) {
	s, _ := newTestScraper(t, &recordingFetcher{}, Options{})

	summary := s.ScrapeCards(context.Background(), nil)
	assert.Equal(t, "0/0", summary.String())
	assert.True(t, summary.OK())
}

func TestWriteAttribution(t *testing.T) {
	s, resolver := newTestScraper(t, &recordingFetcher{}, Options{})

	path, err := s.WriteAttribution()
	require.NoError(t, err)
	assert.Equal(t, resolver.Root(), filepath.Dir(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "wiki.dominionstrategy.com")

	// Rewriting is harmless.
	_, err = s.WriteAttribution()
	assert.NoError(t, err)
}
