//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/goquery"
	"github.com/Quintaneishon/archtext/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_ArchivePage(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	url := archtext.Period{Year: 2020, Month: 4}.SourceURL("")
	html, err := fetcher.Fetch(ctx, url)
	require.NoError(t, err)
	assert.NotEmpty(t, html, "expected non-empty HTML response")

	lower := strings.ToLower(strings.TrimSpace(string(html)))
	assert.True(t, strings.HasPrefix(lower, "<!doctype html>") || strings.HasPrefix(lower, "<html"),
		"expected valid HTML document start")

	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)

	records := archtext.NewDecomposer().Decompose(doc)
	assert.NotEmpty(t, records, "expected at least one article in the April 2020 archive")

	t.Logf("Fetched %d bytes and %d articles from %s", len(html), len(records), url)
}
