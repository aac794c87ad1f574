package emr_dto

// ResourceRef is the compact uuid/display pair the EMR returns for nested resources.
type ResourceRef struct {
	UUID    string `json:"uuid"`
	Display string `json:"display,omitempty"`
}

type Link struct {
	Rel string `json:"rel"`
	URI string `json:"uri"`
}
