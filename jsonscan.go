package swatchgen

import (
	"encoding/json"
	"fmt"
)

// JsonScan decodes a JSON column value into b. SQL NULL and a JSON null leave b as it was.
func JsonScan[T any](src interface{}, b T) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, b)
	}
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, b)
}
