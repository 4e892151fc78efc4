package google

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/api/sheets/v4"
)

// BatchUpdate writes several ranges in one call, in range order.
func (c *Client) BatchUpdate(ctx context.Context, data map[string][][]interface{}) error {
	if c.readOnly {
		return ErrReadOnly
	}
	ranges := make([]string, 0, len(data))
	for r := range data {
		ranges = append(ranges, r)
	}
	sort.Strings(ranges)

	requests := make([]*sheets.ValueRange, 0, len(ranges))
	for _, r := range ranges {
		requests = append(requests, &sheets.ValueRange{
			Range:  r,
			Values: data[r],
		})
	}
	_, err := c.Service.Spreadsheets.Values.BatchUpdate(c.SpreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("batch update failed: %w", err)
	}
	return nil
}

// BatchRead fetches several ranges in one call. Results are in the order the
// ranges were given.
func (c *Client) BatchRead(ctx context.Context, ranges ...string) ([][][]interface{}, error) {
	resp, err := c.Service.Spreadsheets.Values.BatchGet(c.SpreadsheetID).Ranges(ranges...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read ranges %v: %w", ranges, err)
	}
	if len(resp.ValueRanges) != len(ranges) {
		return nil, fmt.Errorf("expected %d ranges, got %d", len(ranges), len(resp.ValueRanges))
	}

	result := make([][][]interface{}, len(ranges))
	for i, vr := range resp.ValueRanges {
		result[i] = vr.Values
	}
	return result, nil
}

// Strings renders sheet values as text, the way the Sheets UI formats them.
func Strings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			if cell != nil {
				rows[i][j] = fmt.Sprint(cell)
			}
		}
	}
	return rows
}
