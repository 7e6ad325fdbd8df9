package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/moncredit/admin-dashboard/internal/services"
)

// filterOption is one entry of a list page's status switcher.
type filterOption struct {
	Value string
	Label string
}

// ListQuery is the parsed state of a list page request.
type ListQuery struct {
	Page   int
	Status string
}

// parseListQuery reads page and status from the URL. Bad page numbers clamp
// to 1; a status outside the allowed vocabulary falls back to the default.
func parseListQuery(r *http.Request, filters []filterOption, defaultStatus string) ListQuery {
	q := ListQuery{Page: 1, Status: defaultStatus}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 1 {
		q.Page = page
	}

	status := r.URL.Query().Get("status")
	for _, f := range filters {
		if f.Value == status {
			q.Status = status
			break
		}
	}
	return q
}

// FilterLink is a rendered status switcher entry. Selecting a filter always
// resets the page to 1.
type FilterLink struct {
	Label  string
	URL    string
	Active bool
}

func buildFilters(basePath string, extra url.Values, current string, filters []filterOption) []FilterLink {
	links := make([]FilterLink, 0, len(filters))
	for _, f := range filters {
		params := cloneValues(extra)
		if f.Value == "" {
			params.Del("status")
		} else {
			params.Set("status", f.Value)
		}
		u := basePath
		if len(params) > 0 {
			u += "?" + params.Encode()
		}
		links = append(links, FilterLink{
			Label:  f.Label,
			URL:    u,
			Active: f.Value == current,
		})
	}
	return links
}

// Pagination drives the prev/next controls. Prev is disabled on page 1 and
// next on the last page, so out-of-range requests cannot be issued from the
// UI.
type Pagination struct {
	Page    int
	Pages   int
	Total   int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

func paginate(basePath string, extra url.Values, q ListQuery, info services.PageInfo) Pagination {
	p := Pagination{
		Page:    q.Page,
		Pages:   info.Pages,
		Total:   info.Total,
		HasPrev: q.Page > 1,
		HasNext: info.Pages > 0 && q.Page < info.Pages,
	}

	if p.HasPrev {
		p.PrevURL = pageURL(basePath, extra, q.Page-1)
	}
	if p.HasNext {
		p.NextURL = pageURL(basePath, extra, q.Page+1)
	}
	return p
}

func pageURL(basePath string, extra url.Values, page int) string {
	params := cloneValues(extra)
	params.Set("page", strconv.Itoa(page))
	return basePath + "?" + params.Encode()
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for key, vals := range v {
		for _, val := range vals {
			out.Add(key, val)
		}
	}
	return out
}
