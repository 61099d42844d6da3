package wdsquery

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/internal/aliases"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/filter"
	"github.com/agentstation/wdsquery/pkg/logging"
	"github.com/agentstation/wdsquery/pkg/simbad"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// fakeFetcher serves canned responses keyed by identifier.
type fakeFetcher struct {
	responses map[string][]string
	errs      map[string]error
	calls     []string
}

func (f *fakeFetcher) Fetch(_ context.Context, ident string) ([]string, error) {
	f.calls = append(f.calls, ident)
	if err := f.errs[ident]; err != nil {
		return nil, err
	}
	if lines, ok := f.responses[ident]; ok {
		return lines, nil
	}
	return []string{"!! No known catalog could be found"}, nil
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return simbad.SplitLines(data)
}

func testCatalog() *wds.Catalog {
	return wds.NewCatalog(
		wds.Component{System: "14396-6050", Label: "AB", Mag1: -0.01, Mag2: 1.33, Notes: "O"},
		wds.Component{System: "14396-6050", Label: "AC", Mag1: -0.01, Mag2: 11.1, Notes: ""},
		wds.Component{System: "00001+0001", Label: "", Mag1: 8.0, Mag2: 9.0, Notes: "X"},
		wds.Component{System: "12345+6789", Label: "AB", Mag1: math.NaN(), Mag2: 9.0, Notes: ""},
	)
}

func newTestClient(t *testing.T, fetcher Fetcher, opts ...Option) Client {
	t.Helper()
	base := []Option{
		WithCatalog(testCatalog()),
		WithFetcher(fetcher),
		WithLogger(logging.NewNopLogger()),
	}
	c, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

func TestComponents(t *testing.T) {
	c := newTestClient(t, &fakeFetcher{})

	table, ids, err := c.Components("14396-6050", filter.PolicyNegative)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB"}, table.Labels())
	assert.Equal(t, []string{"J14396-6050A", "J14396-6050B"}, ids)

	table, ids, err = c.Components("14396-6050", filter.PolicyABC)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "AC"}, table.Labels())
	assert.Equal(t, []string{"J14396-6050A", "J14396-6050B", "J14396-6050C"}, ids)

	// NaN magnitudes are never pruned.
	table, _, err = c.Components("12345+6789", filter.PolicyNegative)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestComponentsErrors(t *testing.T) {
	c := newTestClient(t, &fakeFetcher{})

	_, _, err := c.Components("99999+9999", filter.PolicyNegative)
	assert.True(t, errors.IsNotFound(err))

	table, ids, err := c.Components("00001+0001", filter.PolicyNegative)
	assert.True(t, errors.IsEmptyResult(err))
	assert.Nil(t, table)
	assert.Nil(t, ids)

	table, ids, err = c.Components("14396-6050", filter.Policy(7))
	assert.True(t, errors.IsUnknownPolicy(err))
	assert.Equal(t, 2, table.Len())
	assert.Len(t, ids, 3)

	noCatalog, err := New(WithFetcher(&fakeFetcher{}))
	require.NoError(t, err)
	_, _, err = noCatalog.Components("14396-6050", filter.PolicyNegative)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLookup(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string][]string{
		"J14396-6050A": readLines(t, "pkg/simbad/testdata/alf_cen.txt"),
	}}
	c := newTestClient(t, fetcher)

	rec, err := c.Lookup(context.Background(), "J14396-6050A")
	require.NoError(t, err)
	assert.Equal(t, "alf Cen A", rec.Identifiers.Get(simbad.MainID).String())

	_, err = c.Lookup(context.Background(), "J14396-6050B")
	assert.True(t, errors.IsNotFound(err))
}

func TestSystem(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string][]string{
		"J14396-6050A": readLines(t, "pkg/simbad/testdata/alf_cen.txt"),
	}}
	c := newTestClient(t, fetcher)

	var records, failures int
	c.OnRecord(func(Result) { records++ })
	c.OnFailure(func(string, error) { failures++ })

	result, err := c.System(context.Background(), "14396-6050", filter.PolicyNegative)
	require.NoError(t, err)

	assert.Equal(t, wds.SystemID("14396-6050"), result.System)
	assert.Equal(t, "negative", result.Policy)
	assert.Equal(t, []string{"J14396-6050A", "J14396-6050B"}, fetcher.calls)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "J14396-6050A", result.Records[0].Ident)
	assert.Equal(t, "14396-6050", result.Records[0].System.String())
	assert.Equal(t, []string{"J14396-6050B"}, result.Failed)
	assert.Equal(t, 1, records)
	assert.Equal(t, 1, failures)
}

func TestSystemStopsOnFetchError(t *testing.T) {
	fetcher := &fakeFetcher{errs: map[string]error{
		"J14396-6050A": errors.NewAPIError("simbad", 503, "down"),
	}}
	c := newTestClient(t, fetcher)

	result, err := c.System(context.Background(), "14396-6050", filter.PolicyNegative)
	assert.True(t, errors.IsServiceUnavailable(err))
	require.NotNil(t, result)
	assert.Empty(t, result.Records)
	assert.Equal(t, []string{"J14396-6050A"}, fetcher.calls)
}

func TestQuery(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string][]string{
		"alf Cen": readLines(t, "pkg/simbad/testdata/alf_cen.txt"),
	}}
	dict := aliases.New(map[string]string{"alpha Cen": "alf Cen"})
	c := newTestClient(t, fetcher, WithAliases(dict))

	var looked []string
	c.OnLookup(func(name, ident string) { looked = append(looked, name+"->"+ident) })

	result, err := c.Query(context.Background(), []string{"α Cen\n  (Rigil Kentaurus)", "  ", "Nowhere"})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha Cen->alf Cen", "Nowhere->Nowhere"}, looked)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "alpha Cen", result.Records[0].Name)
	assert.Equal(t, "alf Cen", result.Records[0].Ident)
	assert.Equal(t, []string{"Nowhere"}, result.Failed)
}

func TestOptions(t *testing.T) {
	_, err := New(WithCatalog(nil))
	assert.True(t, errors.IsValidationError(err))
	_, err = New(WithFetcher(nil))
	assert.True(t, errors.IsValidationError(err))
	_, err = New(WithFetcher(&fakeFetcher{}), WithMaxMagDiff(-1))
	assert.True(t, errors.IsValidationError(err))
	_, err = New(WithLogger(nil))
	assert.True(t, errors.IsValidationError(err))

	c, err := New(WithCatalog(testCatalog()), WithFetcher(&fakeFetcher{}), WithMaxMagDiff(20))
	require.NoError(t, err)
	table, _, err := c.Components("14396-6050", filter.PolicyNegative)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}
