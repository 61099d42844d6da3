// Package wdsquery cross-references the Washington Double Star catalog with
// the Simbad identifier service.
//
// A query starts from a WDS system id. The system's components are filtered
// with one of the selection policies, the surviving component labels are
// reconciled into canonical Simbad identifiers, and each identifier is
// fetched and parsed into a structured record.
//
// Example usage:
//
//	cat, err := wds.LoadFile("wdsweb_summ2.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := wdsquery.New(wdsquery.WithCatalog(cat))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.System(ctx, "14396-6050", filter.PolicyNegative)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range result.Records {
//	    fmt.Println(r.Ident, r.Record.Identifiers.Get(simbad.MainID))
//	}
package wdsquery

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/filter"
	"github.com/agentstation/wdsquery/pkg/names"
	"github.com/agentstation/wdsquery/pkg/simbad"
	"github.com/agentstation/wdsquery/pkg/value"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Fetcher returns the text lines of the Simbad response for an identifier.
type Fetcher interface {
	Fetch(ctx context.Context, ident string) ([]string, error)
}

// Resolver maps a user-supplied star name onto a name Simbad recognises.
type Resolver interface {
	Resolve(name string) string
}

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client answers WDS and Simbad queries.
type Client interface {
	// Components returns the filtered components of a system and their
	// canonical Simbad identifiers.
	Components(id wds.SystemID, policy filter.Policy) (*wds.Table, []string, error)

	// Lookup fetches and parses the Simbad record for ident.
	Lookup(ctx context.Context, ident string) (*simbad.Record, error)

	// System runs the whole chain for one WDS system.
	System(ctx context.Context, id wds.SystemID, policy filter.Policy) (*SystemResult, error)

	// Query looks up free-form star names.
	Query(ctx context.Context, stars []string) (*QueryResult, error)

	// Hooks provides access to event callback registration
	Hooks
}

// Result is the parsed record for one identifier.
type Result struct {
	// Name is the name as supplied by the caller.
	Name string `json:"name" yaml:"name"`
	// Ident is the identifier sent to Simbad after alias resolution.
	Ident string `json:"ident" yaml:"ident"`
	// System is the WDS system the record belongs to, decoded from its WDS
	// identifier.
	System value.Value    `json:"wds_system" yaml:"wds_system"`
	Record *simbad.Record `json:"record" yaml:"record"`
}

// SystemResult is the outcome of Client.System.
type SystemResult struct {
	System  wds.SystemID `json:"system" yaml:"system"`
	Policy  string       `json:"policy" yaml:"policy"`
	Table   *wds.Table   `json:"components" yaml:"components"`
	IDs     []string     `json:"ids" yaml:"ids"`
	Records []Result     `json:"records" yaml:"records"`
	Failed  []string     `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// QueryResult is the outcome of Client.Query.
type QueryResult struct {
	Records []Result `json:"records" yaml:"records"`
	Failed  []string `json:"failed,omitempty" yaml:"failed,omitempty"`
}

type client struct {
	catalog  *wds.Catalog
	filter   *filter.Filter
	parser   *simbad.Parser
	fetcher  Fetcher
	resolver Resolver
	logger   *zerolog.Logger
	hooks    *hooks
}

// New creates a Client. Without WithFetcher, responses come from the
// public Simbad service through a cached, paced fetcher.
func New(opts ...Option) (Client, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &client{
		catalog:  o.catalog,
		filter:   o.filter,
		parser:   o.parser,
		fetcher:  o.fetcher,
		resolver: o.resolver,
		logger:   o.logger,
		hooks:    newHooks(),
	}, nil
}

// Components implements Client. An absent system is a NotFoundError and a
// system whose components were all filtered out is an EmptyResultError. An
// unknown policy returns the unfiltered components along with the error.
func (c *client) Components(id wds.SystemID, policy filter.Policy) (*wds.Table, []string, error) {
	if c.catalog == nil {
		return nil, nil, errors.NewConfigError("wdsquery", "no WDS catalog loaded", nil)
	}

	table, ids, err := c.filter.Select(c.catalog, id, policy)
	if err != nil || table != nil {
		return table, ids, err
	}
	if _, ok := c.catalog.Lookup(id); ok {
		return nil, nil, errors.NewEmptyResultError(id.String(), policy.String())
	}
	return nil, nil, errors.NewNotFoundError("WDS system", id.String())
}

// Lookup implements Client. A response from which nothing could be parsed
// is a NotFoundError.
func (c *client) Lookup(ctx context.Context, ident string) (*simbad.Record, error) {
	lines, err := c.fetcher.Fetch(ctx, ident)
	if err != nil {
		return nil, err
	}
	rec := c.parser.Parse(lines)
	if rec.IsEmpty() {
		return nil, errors.NewNotFoundError("Simbad object", ident)
	}
	for _, issue := range rec.Issues {
		c.logger.Debug().Str("ident", ident).Err(issue).Msg("Incomplete Simbad record")
	}
	return rec, nil
}

// System implements Client. Identifiers Simbad does not know are listed in
// Failed; any other lookup error stops the run and is returned with the
// partial result.
func (c *client) System(ctx context.Context, id wds.SystemID, policy filter.Policy) (*SystemResult, error) {
	table, ids, err := c.Components(id, policy)
	if err != nil {
		return nil, err
	}

	result := &SystemResult{System: id, Policy: policy.String(), Table: table, IDs: ids}
	for _, ident := range ids {
		r, ok, err := c.lookup(ctx, ident, ident)
		if err != nil {
			return result, err
		}
		if !ok {
			result.Failed = append(result.Failed, ident)
			continue
		}
		result.Records = append(result.Records, r)
	}
	return result, nil
}

// Query implements Client. Names are normalised and resolved through the
// alias dictionary before lookup.
func (c *client) Query(ctx context.Context, stars []string) (*QueryResult, error) {
	result := &QueryResult{}
	for _, star := range stars {
		name := names.Normalize(star)
		if name == "" {
			continue
		}
		r, ok, err := c.lookup(ctx, name, c.resolve(name))
		if err != nil {
			return result, err
		}
		if !ok {
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Records = append(result.Records, r)
	}
	return result, nil
}

func (c *client) lookup(ctx context.Context, name, ident string) (Result, bool, error) {
	c.hooks.triggerLookup(name, ident)

	rec, err := c.Lookup(ctx, ident)
	if err != nil {
		if errors.IsNotFound(err) {
			c.logger.Warn().Str("ident", ident).Msg("Simbad query failed")
			c.hooks.triggerFailure(name, err)
			return Result{}, false, nil
		}
		return Result{}, false, err
	}

	r := Result{
		Name:   name,
		Ident:  ident,
		System: wds.DecodeSimbadID(rec.Identifiers.Get(simbad.CatalogWDS)),
		Record: rec,
	}
	c.hooks.triggerRecord(r)
	return r, true, nil
}

func (c *client) resolve(name string) string {
	if c.resolver == nil {
		return name
	}
	return c.resolver.Resolve(name)
}
