package goaivdm

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/goaivdm/internal/testutil"
)

// The type 4 and type 5 fixtures pin the corrected ITU-R M.1371 offsets:
// lon/lat at bits 79/107 for type 4, ship type and hull dimensions after the
// 120-bit ship name for type 5. Bit tables that reuse the minute range for
// both coordinates, or read ship type out of the callsign area, fail these.
func TestDecodeGolden(t *testing.T) {
	fixtures := []string{
		"type1_sfbay",
		"type1_underway",
		"type1_turning",
		"type3_undefined",
		"type4_base_station",
		"type5_ever_diadem",
		"type18_class_b",
	}
	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			line := testutil.LoadSentence(t, "sentences/"+name+".nmea")
			result, err := Decode(line)
			require.NoError(t, err)
			require.NotNil(t, result.Message)

			var expected map[string]any
			testutil.LoadJSON(t, "sentences/"+name+".json", &expected)
			require.Equal(t, "", diffFields(expected, result.Fields))
		})
	}
}

// diffFields compares a JSON-loaded expectation against decoded fields,
// tolerating float representation differences.
func diffFields(expected, actual map[string]any) string {
	normalized, err := normalize(actual)
	if err != nil {
		return fmt.Sprintf("normalize actual: %v", err)
	}
	if len(expected) != len(normalized) {
		return fmt.Sprintf("len mismatch expected %d actual %d", len(expected), len(normalized))
	}
	for k, v := range expected {
		av, ok := normalized[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		switch ev := v.(type) {
		case float64:
			avFloat, ok := av.(float64)
			if !ok || math.Abs(ev-avFloat) > 1e-6 {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		default:
			if fmt.Sprintf("%v", v) != fmt.Sprintf("%v", av) {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		}
	}
	return ""
}

func normalize(fields map[string]any) (map[string]any, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
