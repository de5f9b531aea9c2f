package finerrors

import (
	"maps"
)

// CombineMetadata combines the metadata found on an existing error with that given.
func CombineMetadata(withMetadata HasMetadata, metadata map[string]string) map[string]string {
	clone := maps.Clone(withMetadata.DetailsMetadata())
	if clone == nil {
		clone = make(map[string]string, len(metadata))
	}
	maps.Copy(clone, metadata)
	return clone
}
