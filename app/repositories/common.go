package repositories

import (
	"encoding/json"
	"fmt"
)

const (
	// Key prefixes for the stored dataset
	PostKeyPrefix  = "post:"
	IndexKeyPrefix = "id:"
)

// postKey returns the key for the post at the given dataset position.
// Positions are zero padded so that badger's byte ordering matches dataset order.
func postKey(position int) []byte {
	return []byte(fmt.Sprintf("%s%010d", PostKeyPrefix, position))
}

func indexKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", IndexKeyPrefix, id))
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
