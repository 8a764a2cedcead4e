package family

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
	"github.com/saketk/familystream/pkg/streaming/stream"
)

var defaultColors = []string{"Red", "Blue", "Yellow", "Green"}

// DefaultColors returns a new copy of the colors AssignFavoriteColors assigns.
func DefaultColors() []string {
	return slices.Clone(defaultColors)
}

// Members starts a pipeline over members. The slice itself is never modified.
func Members(members []*Member) stream.Stream[*Member] {
	return stream.FromSlice(members)
}

// Names maps a member stream to member names.
func Names(s stream.Stream[*Member]) stream.Stream[string] {
	return stream.MapTo(s, func(m *Member) string { return m.Name })
}

// DistinctByIdentity drops repeated records. Only the same pointer counts as
// a repeat; separately built records with equal fields are all kept.
func DistinctByIdentity(s stream.Stream[*Member]) stream.Stream[*Member] {
	return s.Distinct()
}

// FilterByGender keeps members of gender g in their original order.
func FilterByGender(s stream.Stream[*Member], g Gender) stream.Stream[*Member] {
	return s.Filter(func(m *Member) bool { return m.Gender == g })
}

// WithStarSigns assigns each member's star sign as it passes through.
func WithStarSigns(s stream.Stream[*Member]) stream.Stream[*Member] {
	return s.Map(AssignStarSign)
}

// AssignFavoriteColors gives every member its own copy of the default colors.
func AssignFavoriteColors(ctx context.Context, s stream.Stream[*Member]) error {
	return s.ForEach(ctx, func(m *Member) {
		m.FavoriteColors = DefaultColors()
	})
}

// ExpandFavoriteColors emits every member's colors, member by member.
// Colors must have been assigned first; a member without them fails the
// terminal operation with an error matching errors.ErrUninitializedField.
func ExpandFavoriteColors(s stream.Stream[*Member]) stream.Stream[string] {
	return ExpandFavoriteColorsPeek(s, nil)
}

// ExpandFavoriteColorsPeek is ExpandFavoriteColors with a callback invoked
// for each member right before its colors are emitted.
func ExpandFavoriteColorsPeek(s stream.Stream[*Member], onMember func(*Member)) stream.Stream[string] {
	return stream.FlatMapTo(s, func(m *Member) stream.Stream[string] {
		colors, err := m.Colors()
		if err != nil {
			return stream.Fail[string](err)
		}
		if onMember != nil {
			onMember(m)
		}
		return stream.FromSlice(colors)
	})
}

func nameContains(substr string) func(*Member) bool {
	return func(m *Member) bool { return strings.Contains(m.Name, substr) }
}

// AnyNameContains reports whether some name contains substr. False on an
// empty stream.
func AnyNameContains(ctx context.Context, s stream.Stream[*Member], substr string) (bool, error) {
	return s.AnyMatch(ctx, nameContains(substr))
}

// AllNamesContain reports whether every name contains substr. True on an
// empty stream.
func AllNamesContain(ctx context.Context, s stream.Stream[*Member], substr string) (bool, error) {
	return s.AllMatch(ctx, nameContains(substr))
}

// NoneNameContains reports whether no name contains substr. True on an
// empty stream.
func NoneNameContains(ctx context.Context, s stream.Stream[*Member], substr string) (bool, error) {
	return s.NoneMatch(ctx, nameContains(substr))
}

// SumAges adds up member ages. The boolean is false for an empty stream. A
// sum outside the range of int fails with errors.ErrOverflow.
func SumAges(ctx context.Context, s stream.Stream[*Member]) (int, bool, error) {
	ages := stream.MapTo(s, func(m *Member) int { return m.Age })
	return stream.TryReduce(ctx, ages, addChecked)
}

// TotalAge is SumAges for callers that need a value: an empty stream fails
// with errors.ErrEmptyResult.
func TotalAge(ctx context.Context, s stream.Stream[*Member]) (int, error) {
	sum, ok, err := SumAges(ctx, s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("total age: %w", fserrors.ErrEmptyResult)
	}
	return sum, nil
}

func addChecked(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, fmt.Errorf("adding %d to %d: %w", b, a, fserrors.ErrOverflow)
	}
	return a + b, nil
}

// CollectToSequence materialises the stream into a new slice in order.
func CollectToSequence(ctx context.Context, s stream.Stream[*Member]) ([]*Member, error) {
	return stream.Collect(ctx, s, stream.ToList[*Member]())
}
