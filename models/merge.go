package models

import (
	"encoding/json"

	"github.com/rohanthewiz/serr"
)

// MergeContent applies a partial JSON patch over an existing content
// payload, key by key (shallow), and re-decodes the result into the
// concrete struct for the component type.
func MergeContent(t ComponentType, existing Content, patch json.RawMessage) (Content, error) {
	if len(patch) == 0 {
		return existing, nil
	}

	base := map[string]any{}
	if existing != nil {
		data, err := json.Marshal(existing)
		if err != nil {
			return nil, serr.Wrap(err, "failed to marshal existing content")
		}
		if err := json.Unmarshal(data, &base); err != nil {
			return nil, serr.Wrap(err, "failed to expand existing content")
		}
	}

	patchMap := map[string]any{}
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return nil, serr.Wrap(err, "invalid content patch")
	}
	for k, v := range patchMap {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return nil, serr.Wrap(err, "failed to marshal merged content")
	}
	return decodeContent(t, merged)
}

// MergeStyle overlays patch keys onto the existing style record.
func MergeStyle(existing, patch map[string]string) map[string]string {
	merged := map[string]string{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
