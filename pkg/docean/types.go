package docean

// Links represents the pagination links on a list response.
type Links struct {
	Pages *Pages `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Pages holds the page navigation URLs.
type Pages struct {
	First string `json:"first,omitempty" yaml:"first,omitempty"`
	Prev  string `json:"prev,omitempty"  yaml:"prev,omitempty"`
	Next  string `json:"next,omitempty"  yaml:"next,omitempty"`
	Last  string `json:"last,omitempty"  yaml:"last,omitempty"`
}

// Meta represents the meta block on a list response.
type Meta struct {
	Total int `json:"total" yaml:"total"`
}

// ListResponse represents a decoded collection response. Resources is never
// nil: an empty collection decodes to an empty slice. Links and Meta carry
// the API's pagination data verbatim; the client does not traverse pages.
type ListResponse[T any] struct {
	Resources []T
	Links     *Links
	Meta      *Meta
}

// DropletList represents a decoded list of droplets.
type DropletList = ListResponse[Droplet]

// AppList represents a decoded list of apps.
type AppList = ListResponse[App]

// ActionList represents a decoded list of actions.
type ActionList = ListResponse[Action]

// SnapshotList represents a decoded list of snapshots.
type SnapshotList = ListResponse[Snapshot]
