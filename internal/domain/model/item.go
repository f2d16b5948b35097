package model

import (
	"time"
)

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	LastUpdated time.Time `json:"last_updated"`
}

// ItemPatch is a partial update. A nil field leaves the stored value
// unchanged; a non-nil field overwrites it, so an explicit zero quantity and
// an explicit empty description are real updates.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply merges the patch into a copy of the item. LastUpdated is left alone;
// the store refreshes it when the merged record is written back.
func (i Item) Apply(patch ItemPatch) Item {
	if patch.Name != nil {
		i.Name = *patch.Name
	}
	if patch.Quantity != nil {
		i.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		i.Description = *patch.Description
	}
	return i
}
