package version

import (
	"sort"
)

// Set is a de-duplicated collection of versions keyed on their raw value.
type Set struct {
	versions map[string]*Version
}

func NewSet(vs ...*Version) *Set {
	s := &Set{
		versions: make(map[string]*Version),
	}
	s.Add(vs...)
	return s
}

func (s *Set) Add(vs ...*Version) {
	if s.versions == nil {
		s.versions = make(map[string]*Version)
	}

	for _, v := range vs {
		if v == nil {
			continue
		}
		s.versions[v.Raw] = v
	}
}

func (s *Set) Remove(vs ...*Version) {
	if s.versions == nil {
		return
	}

	for _, v := range vs {
		if v == nil {
			continue
		}
		delete(s.versions, v.Raw)
	}
}

func (s *Set) Contains(v *Version) bool {
	if v == nil || s.versions == nil {
		return false
	}

	_, exists := s.versions[v.Raw]
	return exists
}

// Values returns the members in precedence order, smallest first.
func (s *Set) Values() []*Version {
	if len(s.versions) == 0 {
		return nil
	}

	out := make([]*Version, 0, len(s.versions))
	for _, v := range s.versions {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) == Less
	})

	return out
}

func (s *Set) Size() int {
	return len(s.versions)
}

func (s *Set) Clear() {
	if s.versions != nil {
		s.versions = make(map[string]*Version)
	}
}
