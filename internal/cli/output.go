package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/arrange/pkg/arrange"
)

// countResult is the JSON record printed by count and eval.
type countResult struct {
	RunID  string             `json:"run_id"`
	Items  int                `json:"items"`
	Counts [arrange.Slots]int `json:"counts"`
	Last   int                `json:"last"`
	Result uint32             `json:"result"`
}

// newRunID returns a time-ordered identifier for one invocation.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// printCount writes a count either as a bare number or as a JSON record.
func printCount(w io.Writer, asJSON bool, counts arrange.Counts, last arrange.Marker, result uint32) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, result)
		return err
	}
	return writeJSON(w, countResult{
		RunID:  newRunID(),
		Items:  counts.Items(),
		Counts: counts,
		Last:   int(last),
		Result: result,
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
