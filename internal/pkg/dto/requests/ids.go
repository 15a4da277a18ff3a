package requests

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// FlexibleID accepts an identifier sent either as a JSON number or as a
// numeric string. Form posts from the browser send the latter.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*id = 0
			return nil
		}
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		*id = FlexibleID(parsed)
		return nil
	}
	var parsed int64
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*id = FlexibleID(parsed)
	return nil
}

func (id FlexibleID) Int64() int64 {
	return int64(id)
}

func FlexibleIDsToInt64(ids []FlexibleID) []int64 {
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.Int64())
	}
	return result
}
