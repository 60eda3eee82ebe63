// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
)

// Filter operators understood by the row API.
const (
	OpEq  = "eq"
	OpGte = "gte"
	OpLte = "lte"
)

// Filter is a single column condition, rendered as column=op.value.
type Filter struct {
	Column string
	Op     string
	Value  string
}

// Eq returns an equality filter.
func Eq(column, value string) Filter { return Filter{Column: column, Op: OpEq, Value: value} }

// Gte returns a greater-or-equal filter.
func Gte(column, value string) Filter { return Filter{Column: column, Op: OpGte, Value: value} }

// Lte returns a less-or-equal filter.
func Lte(column, value string) Filter { return Filter{Column: column, Op: OpLte, Value: value} }

// Order is a sort clause. A zero Order leaves the backend order.
type Order struct {
	Column    string
	Ascending bool
}

func (o Order) String() string {
	if o.Column == "" {
		return ""
	}
	dir := "desc"
	if o.Ascending {
		dir = "asc"
	}
	return o.Column + "." + dir
}

const (
	preferRepresentation = "return=representation"
	preferMergeDuplicate = "resolution=merge-duplicates,return=representation"
)

func filterValues(filters []Filter) url.Values {
	values := url.Values{}
	for _, f := range filters {
		values.Add(f.Column, f.Op+"."+f.Value)
	}
	return values
}

// selectRows GETs the rows of table matching every filter into dst.
func (h *httpServerAdapter) selectRows(ctx context.Context, table string, filters []Filter, order Order, dst any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	values := filterValues(filters)
	values.Set("select", "*")
	if o := order.String(); o != "" {
		values.Set("order", o)
	}

	resp, err := req.
		SetQueryParamsFromValues(values).
		SetResult(dst).
		Get(restPath + "/" + table)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}

	return mapHTTPError(resp)
}

// insertRows POSTs body to table and decodes the stored rows into dst.
func (h *httpServerAdapter) insertRows(ctx context.Context, table string, body, dst any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", preferRepresentation).
		SetBody(body).
		SetResult(dst).
		Post(restPath + "/" + table)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}

	return mapHTTPError(resp)
}

// updateRows PATCHes the rows of table matching filters and decodes the
// updated rows into dst.
func (h *httpServerAdapter) updateRows(ctx context.Context, table string, filters []Filter, patch, dst any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", preferRepresentation).
		SetQueryParamsFromValues(filterValues(filters)).
		SetBody(patch).
		SetResult(dst).
		Patch(restPath + "/" + table)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	return mapHTTPError(resp)
}

// upsertRows POSTs body to table merging on the onConflict column.
func (h *httpServerAdapter) upsertRows(ctx context.Context, table, onConflict string, body, dst any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", preferMergeDuplicate).
		SetQueryParam("on_conflict", onConflict).
		SetBody(body).
		SetResult(dst).
		Post(restPath + "/" + table)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}

	return mapHTTPError(resp)
}
