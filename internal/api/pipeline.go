package api

import (
	"context"

	"github.com/sensortower/st-cli/internal/normalize"
	"github.com/sensortower/st-cli/internal/stfields"
	"github.com/sensortower/st-cli/internal/table"
)

// fetchTable runs the full pipeline for an OS-scoped endpoint: execute the
// request, decode the body into a table, rewrite abbreviated columns to
// descriptive names, and apply post-processing. Validation happens in the
// endpoint wrappers before this is called.
func (c *Client) fetchTable(ctx context.Context, os OS, endpoint string, params *Params) (*table.Table, error) {
	status, body, err := c.get(ctx, c.v1Path(os, endpoint), params)
	if err != nil {
		return nil, err
	}
	tbl, err := decodeTable(status, body)
	if err != nil {
		return nil, err
	}
	tbl = stfields.MapFields(tbl, string(os))
	return normalize.Normalize(tbl, string(os)), nil
}
