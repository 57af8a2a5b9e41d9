package transcript

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

type entrySource []Entry

func (s entrySource) String(i int) string {
	e := s[i]
	return strings.ToLower(strings.Join([]string{e.Sender, e.Text, e.Attachment}, " "))
}

func (s entrySource) Len() int { return len(s) }

// Filter 返回与 query 模糊匹配的记录，保持原有的时间顺序。
// query 为空时原样返回。
func Filter(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return entries
	}
	matches := fuzzy.FindFrom(strings.ToLower(trimmed), entrySource(entries))
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	sort.Ints(idx)
	out := make([]Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, entries[i])
	}
	return out
}
