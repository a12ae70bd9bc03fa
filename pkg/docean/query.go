package docean

import (
	"net/url"
	"strconv"
)

// ListParams expresses common list options. The DigitalOcean API paginates
// with page/per_page and filters collections with a small set of query
// parameters; only the values set here appear in the request.
type ListParams struct {
	// Page is the 1-based page to fetch; zero means the API default.
	Page int
	// PerPage is the page size; zero means the API default.
	PerPage int
	// TagName filters a collection to resources carrying the tag.
	TagName string
	// ResourceType filters top-level snapshots ("droplet" or "volume").
	ResourceType string
	// Name filters collections that support exact-name lookup.
	Name string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithPage sets the page number.
func (p *ListParams) WithPage(page int) *ListParams {
	p.Page = page

	return p
}

// WithPerPage sets the page size.
func (p *ListParams) WithPerPage(perPage int) *ListParams {
	p.PerPage = perPage

	return p
}

// WithTagName sets the tag filter.
func (p *ListParams) WithTagName(tag string) *ListParams {
	p.TagName = tag

	return p
}

// WithResourceType sets the resource type filter.
func (p *ListParams) WithResourceType(resourceType string) *ListParams {
	p.ResourceType = resourceType

	return p
}

// WithName sets the name filter.
func (p *ListParams) WithName(name string) *ListParams {
	p.Name = name

	return p
}

// ToValues converts the parameters to url.Values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(p.PerPage))
	}

	if p.TagName != "" {
		values.Set("tag_name", p.TagName)
	}

	if p.ResourceType != "" {
		values.Set("resource_type", p.ResourceType)
	}

	if p.Name != "" {
		values.Set("name", p.Name)
	}

	return values
}
