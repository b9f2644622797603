package service

import (
	"sort"

	"qrlinx/internal/model"
	"qrlinx/pkg/util"
)

// FilterLinks keeps links whose original URL contains query, ignoring case.
// An empty query keeps everything.
func FilterLinks(links []model.Link, query string) []model.Link {
	out := make([]model.Link, 0, len(links))
	for _, l := range links {
		if util.ContainsFold(l.OriginalURL, query) {
			out = append(out, l)
		}
	}
	return out
}

// SortLinks orders links by the hostname of their original URL. URLs that do
// not parse sort by their raw string. Ties keep their incoming order.
func SortLinks(links []model.Link) []model.Link {
	out := make([]model.Link, len(links))
	copy(out, links)

	sort.SliceStable(out, func(i, j int) bool {
		return util.Hostname(out[i].OriginalURL) < util.Hostname(out[j].OriginalURL)
	})
	return out
}

// VisibleLinks is the filtered, sorted list shown in the sidebar
func VisibleLinks(links []model.Link, query string) []model.Link {
	return SortLinks(FilterLinks(links, query))
}

func removeLink(links []model.Link, id int64) []model.Link {
	out := make([]model.Link, 0, len(links))
	for _, l := range links {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

func findLink(links []model.Link, id int64) (model.Link, bool) {
	for _, l := range links {
		if l.ID == id {
			return l, true
		}
	}
	return model.Link{}, false
}
