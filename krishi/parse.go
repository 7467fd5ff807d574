package krishi

import "encoding/json"

// parseObject strictly parses completion text as one JSON object. The raw
// text rides along on failure so prompt or model drift can be diagnosed from
// logs; no semantic validation happens here.
func parseObject(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	return obj, nil
}
