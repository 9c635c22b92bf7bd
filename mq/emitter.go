package mq

import (
	"log"
)

type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}

// Emit publishes an index event for the search/indexing side.
func Emit(eventName string, content Index) error {
	log.Println(eventName, "emitted", content)
	return nil
}
