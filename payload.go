package snowbench

import (
	"encoding/json"
	"fmt"
)

// SamplePayload is the fixed document every default operation works on:
// a long numeric ID encoded as text, a short string field and a small
// integer field.
const SamplePayload = `{"id":"123456789012345678","name":"test","value":42}`

// Payload is the structured form of SamplePayload.
type Payload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DefaultSuite returns the fixed payload benchmark suite. The sample
// document is decoded once up front; operations share it read-only.
func DefaultSuite() (*Suite, error) {
	sampleBytes := []byte(SamplePayload)

	var parsed Payload
	if err := json.Unmarshal(sampleBytes, &parsed); err != nil {
		return nil, fmt.Errorf("building sample payload: %w", err)
	}

	return &Suite{
		Name: "json",
		Operations: []Operation{
			{Name: "BM_JSON_Parse", Fn: func() error {
				var p Payload
				return json.Unmarshal([]byte(SamplePayload), &p)
			}},
			{Name: "BM_JSON_Parse_Buffer", Fn: func() error {
				var p Payload
				return json.Unmarshal(sampleBytes, &p)
			}},
			{Name: "BM_JSON_Get_Snowflake", Fn: func() error {
				_, err := ParseSnowflake(parsed.ID)
				return err
			}},
			{Name: "BM_JSON_Mut_Serialize", Fn: func() error {
				_, err := json.Marshal(Payload{ID: parsed.ID, Name: "test", Value: 42})
				return err
			}},
		},
	}, nil
}

// VerifyPayload round-trips the sample document. The CLI runs it before
// benchmarking so a broken codec fails fast with a diagnostic instead of
// producing numbers for it.
func VerifyPayload() error {
	var p Payload
	if err := json.Unmarshal([]byte(SamplePayload), &p); err != nil {
		return fmt.Errorf("sample payload does not parse: %w", err)
	}
	id, err := ParseSnowflake(p.ID)
	if err != nil {
		return err
	}
	out, err := json.Marshal(Payload{ID: id.String(), Name: p.Name, Value: p.Value})
	if err != nil {
		return fmt.Errorf("sample payload does not serialize: %w", err)
	}
	if string(out) != SamplePayload {
		return fmt.Errorf("sample payload round-trip mismatch: %s", out)
	}
	return nil
}
