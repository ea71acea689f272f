package rpc

import "docnav/internal/docs"

// VersionsResponse is the response body for GET /api/versions.
type VersionsResponse struct {
	Versions []docs.Version `json:"versions"`
}

// TreeResponse is the response body for GET /api/{version}/tree.
type TreeResponse struct {
	Version        string                   `json:"version"`
	Items          []*docs.Item             `json:"items"`
	Tree           []*docs.ResolvedCategory `json:"tree"`
	StandaloneDocs []*docs.Item             `json:"standaloneDocs"`
}

// SearchResponse is the response body for GET /api/{version}/search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	URI     string   `json:"uri"`
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Snippet string   `json:"snippet,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// DocResponse is the response body for GET /api/{version}/items/{id}.
type DocResponse struct {
	URI      string `json:"uri"`
	Markdown string `json:"markdown"`
}
