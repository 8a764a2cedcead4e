package family

import (
	"context"
	"slices"
	"strings"

	"github.com/saketk/familystream/pkg/streaming/stream"
)

// IdentityPolicy decides when two members count as the same set element.
type IdentityPolicy int

const (
	// ByReference treats only the same pointer as a duplicate and keeps
	// insertion order.
	ByReference IdentityPolicy = iota
	// ByName treats members with the same name as duplicates, keeps the first
	// one added and orders members by name.
	ByName
)

func (p IdentityPolicy) String() string {
	if p == ByName {
		return "by-name"
	}
	return "by-reference"
}

// MemberSet is an ordered set of members under an IdentityPolicy.
type MemberSet struct {
	policy  IdentityPolicy
	keys    map[any]struct{}
	members []*Member
}

// NewMemberSet creates an empty set.
func NewMemberSet(policy IdentityPolicy) *MemberSet {
	return &MemberSet{
		policy: policy,
		keys:   make(map[any]struct{}),
	}
}

// Policy returns the set's identity policy.
func (s *MemberSet) Policy() IdentityPolicy {
	return s.policy
}

func (s *MemberSet) key(m *Member) any {
	if s.policy == ByName {
		return m.Name
	}
	return m
}

// Add inserts m unless an equal member is present. It reports whether m was
// added. Nil members are ignored.
func (s *MemberSet) Add(m *Member) bool {
	if m == nil {
		return false
	}

	k := s.key(m)
	if _, dup := s.keys[k]; dup {
		return false
	}
	s.keys[k] = struct{}{}

	if s.policy == ByName {
		i, _ := slices.BinarySearchFunc(s.members, m.Name, func(e *Member, name string) int {
			return strings.Compare(e.Name, name)
		})
		s.members = slices.Insert(s.members, i, m)
		return true
	}

	s.members = append(s.members, m)
	return true
}

// AddAll drains the stream into the set and returns how many members were
// added.
func (s *MemberSet) AddAll(ctx context.Context, st stream.Stream[*Member]) (int, error) {
	added := 0
	err := st.ForEach(ctx, func(m *Member) {
		if s.Add(m) {
			added++
		}
	})
	return added, err
}

// Contains reports whether a member equal to m under the set's policy is present.
func (s *MemberSet) Contains(m *Member) bool {
	if m == nil {
		return false
	}
	_, ok := s.keys[s.key(m)]
	return ok
}

// Len returns the number of members.
func (s *MemberSet) Len() int {
	return len(s.members)
}

// Members returns the members in set order.
func (s *MemberSet) Members() []*Member {
	return slices.Clone(s.members)
}

// Stream starts a pipeline over the members in set order.
func (s *MemberSet) Stream() stream.Stream[*Member] {
	return stream.FromSlice(s.Members())
}

// UniqueByName keeps the first member for each name, sorted by name.
func UniqueByName(ctx context.Context, st stream.Stream[*Member]) ([]*Member, error) {
	set := NewMemberSet(ByName)
	if _, err := set.AddAll(ctx, st); err != nil {
		return nil, err
	}
	return set.Members(), nil
}
