// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// EpochBase is the fixed offset added to every raw timestamp in an ingest
// batch. Nodes report seconds counted from the fleet's reference epoch, not
// the Unix epoch; stored timestamps are raw + EpochBase, in Unix seconds.
const EpochBase int64 = 1760000000

// NoData is the sentinel emitted for the two current-value fields of a query
// result when a node has no readings on the requested date. The front end
// relies on the exact value.
const NoData = -255

// Request types

// IngestRequest is the JSON body of /receive_data. Scalars are pointers so
// that absent and null fields are distinguishable from zero values.
type IngestRequest struct {
	NodeName  *string   `json:"node_name"`
	Voltage   *float64  `json:"voltage"`
	Battery   *float64  `json:"battery"`
	Timestamp []float64 `json:"timestamp"`
	Sound     []float64 `json:"sound"`
	Lux       []float64 `json:"lux"`
}

// Response types

type IngestResponse struct {
	Status       string `json:"status"`
	InsertedRows int    `json:"inserted_rows"`
}

// QueryResult is the per-node, per-date time series response.
//
// The shape is uneven on purpose: when no rows match, the series fields are
// null but the two current-value fields carry the NoData sentinel. The three
// device-health fields appear only when the node has reported since process
// start; their capitalized names are part of the wire contract.
type QueryResult struct {
	CurrentLight    *float64 `json:"current_light"`
	CurrentLoudness *float64 `json:"current_loudness"`
	Timestamps      []int64  `json:"timestamps"`
	LightIntensity  any      `json:"light_intensity"`
	Loudness        any      `json:"loudness"`

	Battery    *float64 `json:"Battery Percentage,omitempty"`
	Voltage    *float64 `json:"Voltage,omitempty"`
	LastUpdate *int64   `json:"Last Update,omitempty"`
}

// EmptyQueryResult returns the defined result for "no store" or "no rows on
// that date": never an error, always this sentinel shape.
func EmptyQueryResult() QueryResult {
	return QueryResult{
		LightIntensity: NoData,
		Loudness:       NoData,
	}
}

type TimeResponse struct {
	Time int64 `json:"time"`
}

// Error response

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ValidationError marks an ingest payload rejected before any storage work:
// missing or null required fields, or an unusable node name.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
