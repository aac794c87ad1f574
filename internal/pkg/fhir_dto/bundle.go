package fhir_dto

import "encoding/json"

type FHIRBundle struct {
	ResourceType string  `json:"resourceType"`
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Total        int     `json:"total"`
	Link         []Link  `json:"link,omitempty"`
	Entry        []Entry `json:"entry"`
}

type Link struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type Entry struct {
	Resource json.RawMessage `json:"resource"`
}
