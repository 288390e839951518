package query

import (
	"strconv"
	"strings"
)

type Links struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Meta is the pagination block of every list response
type Meta struct {
	Links         Links `json:"links"`
	Total         int64 `json:"total"`
	NumberOfPages int64 `json:"numberOfPages"`
}

func NumberOfPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Links builds first/prev when the current page is not the first one and
// next/last when more results follow.
func (q *Query) Links(baseURL string, total int64) Links {
	var links Links
	if q.Limit <= 0 {
		return links
	}

	if q.Skip > 0 {
		links.First = q.pageURL(baseURL, 0)
		prev := q.Skip - q.Limit
		if prev < 0 {
			prev = 0
		}
		links.Prev = q.pageURL(baseURL, prev)
	}

	// Skip can be any int64, so compare without adding to it
	if q.Skip < total-q.Limit {
		links.Next = q.pageURL(baseURL, q.Skip+q.Limit)
		links.Last = q.pageURL(baseURL, (NumberOfPages(total, q.Limit)-1)*q.Limit)
	}
	return links
}

func (q *Query) Meta(baseURL string, total int64) Meta {
	return Meta{
		Links:         q.Links(baseURL, total),
		Total:         total,
		NumberOfPages: NumberOfPages(total, q.Limit),
	}
}

func (q *Query) pageURL(baseURL string, offset int64) string {
	terms := make([]string, 0, len(q.rest)+2)
	terms = append(terms, q.rest...)
	terms = append(terms, "limit="+strconv.FormatInt(q.Limit, 10), "offset="+strconv.FormatInt(offset, 10))
	return baseURL + "?" + strings.Join(terms, "&")
}
