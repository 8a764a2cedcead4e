package showcase

import (
	"context"
	"strconv"
	"strings"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
	"github.com/saketk/familystream/pkg/family"
	"github.com/saketk/familystream/pkg/streaming/stream"
)

// Demo names.
const (
	DemoIterate = "iterate"
	DemoFilter  = "filter"
	DemoMap     = "map"
	DemoFlatMap = "flatmap"
	DemoMatch   = "match"
	DemoReduce  = "reduce"
	DemoCollect = "collect"
	DemoSet     = "set"

	// DemoAll expands to every demo in DemoNames order.
	DemoAll = "all"
)

// DefaultSubstring is the substring the match demo looks for.
const DefaultSubstring = "a"

// DemoNames lists the built-in demos in presentation order.
func DemoNames() []string {
	return []string{DemoIterate, DemoFilter, DemoMap, DemoFlatMap, DemoMatch, DemoReduce, DemoCollect, DemoSet}
}

// Options tune the built-in demos.
type Options struct {
	// Substring is matched against member names by the match demo.
	// Default: "a"
	Substring string
}

// Demo returns the built-in demo called name.
func Demo(name string, opts Options) (Stage, error) {
	if opts.Substring == "" {
		opts.Substring = DefaultSubstring
	}

	switch name {
	case DemoIterate:
		return NewStageFunc(name, iterate), nil
	case DemoFilter:
		return NewStageFunc(name, filterFemale), nil
	case DemoMap:
		return NewStageFunc(name, mapStarSigns), nil
	case DemoFlatMap:
		return NewStageFunc(name, flatMapColors), nil
	case DemoMatch:
		return NewStageFunc(name, matchNames(opts.Substring)), nil
	case DemoReduce:
		return NewStageFunc(name, reduceAges), nil
	case DemoCollect:
		return NewStageFunc(name, collectNames), nil
	case DemoSet:
		return NewStageFunc(name, uniqueNames), nil
	}
	return nil, fserrors.NewValidationError("showcase", "demo", name, "unknown demo").
		WithHint("use one of " + strings.Join(DemoNames(), ", ") + " or " + DemoAll)
}

// Demos resolves names in order. DemoAll expands in place.
func Demos(names []string, opts Options) ([]Stage, error) {
	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		if name == DemoAll {
			for _, n := range DemoNames() {
				st, _ := Demo(n, opts)
				stages = append(stages, st)
			}
			continue
		}
		st, err := Demo(name, opts)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return stages, nil
}

// emitEach drains s, emitting format(v) for every element. The first emit
// failure stops the drain.
func emitEach[T any](ctx context.Context, s stream.Stream[T], emit Emit, format func(T) string) error {
	var emitErr error
	_, err := s.AllMatch(ctx, func(v T) bool {
		emitErr = emit(format(v))
		return emitErr == nil
	})
	if err != nil {
		return err
	}
	return emitErr
}

func iterate(ctx context.Context, members []*family.Member, emit Emit) error {
	s := family.DistinctByIdentity(family.Members(members))
	return emitEach(ctx, s, emit, func(m *family.Member) string {
		return "Name : " + m.Name
	})
}

func filterFemale(ctx context.Context, members []*family.Member, emit Emit) error {
	s := family.FilterByGender(family.Members(members), family.Female)
	return emitEach(ctx, s, emit, func(m *family.Member) string {
		return "Name : " + m.Name
	})
}

func mapStarSigns(ctx context.Context, members []*family.Member, emit Emit) error {
	s := family.WithStarSigns(family.Members(members))
	return emitEach(ctx, s, emit, func(m *family.Member) string {
		sign := m.StarSign
		if !m.HasStarSign() {
			sign = "none"
		}
		return "Name : " + m.Name + ", Star sign - " + sign
	})
}

func flatMapColors(ctx context.Context, members []*family.Member, emit Emit) error {
	if err := family.AssignFavoriteColors(ctx, family.Members(members)); err != nil {
		return err
	}

	var emitErr error
	colors := family.ExpandFavoriteColorsPeek(family.Members(members), func(m *family.Member) {
		if emitErr == nil {
			emitErr = emit("Member Name - " + m.Name)
		}
	})
	// A failed header stops the drain before that member's colors.
	if _, err := colors.AllMatch(ctx, func(c string) bool {
		if emitErr == nil {
			emitErr = emit("Favorite Color - " + c)
		}
		return emitErr == nil
	}); err != nil {
		return err
	}
	return emitErr
}

func matchNames(substr string) func(context.Context, []*family.Member, Emit) error {
	return func(ctx context.Context, members []*family.Member, emit Emit) error {
		suffix := " name with " + substr

		anyMatch, err := family.AnyNameContains(ctx, family.Members(members), substr)
		if err != nil {
			return err
		}
		line := "No family member contains" + suffix
		if anyMatch {
			line = "Family member contains" + suffix
		}
		if err := emit(line); err != nil {
			return err
		}

		allMatch, err := family.AllNamesContain(ctx, family.Members(members), substr)
		if err != nil {
			return err
		}
		line = "Not all family members contains" + suffix
		if allMatch {
			line = "All family member contains" + suffix
		}
		if err := emit(line); err != nil {
			return err
		}

		noneMatch, err := family.NoneNameContains(ctx, family.Members(members), substr)
		if err != nil {
			return err
		}
		line = "Some family members contains" + suffix
		if noneMatch {
			line = "No family member contains" + suffix
		}
		return emit(line)
	}
}

func reduceAges(ctx context.Context, members []*family.Member, emit Emit) error {
	sum, ok, err := family.SumAges(ctx, family.Members(members))
	if err != nil {
		return err
	}
	if !ok {
		return emit("Reduced result - none")
	}
	return emit("Reduced result - " + strconv.Itoa(sum))
}

func collectNames(ctx context.Context, members []*family.Member, emit Emit) error {
	list, err := family.CollectToSequence(ctx, family.Members(members))
	if err != nil {
		return err
	}
	for _, m := range list {
		if err := emit(m.Name); err != nil {
			return err
		}
	}
	return nil
}

func uniqueNames(ctx context.Context, members []*family.Member, emit Emit) error {
	unique, err := family.UniqueByName(ctx, family.Members(members))
	if err != nil {
		return err
	}
	for _, m := range unique {
		if err := emit("Family member name " + m.Name); err != nil {
			return err
		}
	}
	return nil
}
