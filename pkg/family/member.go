package family

import (
	"fmt"
	"strings"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
	"github.com/saketk/familystream/pkg/common/validation"
)

// Gender of a family member.
type Gender int

const (
	Male Gender = iota + 1
	Female
)

// String returns "MALE" or "FEMALE".
func (g Gender) String() string {
	switch g {
	case Male:
		return "MALE"
	case Female:
		return "FEMALE"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// Valid reports whether g is Male or Female.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// ParseGender parses "male" or "female" in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MALE":
		return Male, nil
	case "FEMALE":
		return Female, nil
	}
	return 0, fserrors.NewValidationError("family", "gender", s, "unknown gender").
		WithHint("use MALE or FEMALE")
}

// Member is one family record. StarSign and FavoriteColors start unset and
// are filled in place by pipeline stages; "" and nil mean unset.
//
// Members are passed by pointer and the pointer is the record's identity.
type Member struct {
	Name           string
	Gender         Gender
	Age            int
	StarSign       string
	FavoriteColors []string
}

// NewMember validates the fixed fields and returns a new record.
func NewMember(name string, gender Gender, age int) (*Member, error) {
	if err := validation.ValidateNotEmpty("family", "name", name); err != nil {
		return nil, err
	}
	if !gender.Valid() {
		return nil, fserrors.NewValidationError("family", "gender", gender, "unknown gender").
			WithHint("use family.Male or family.Female")
	}
	if err := validation.ValidateNonNegative("family", "age", age); err != nil {
		return nil, err
	}
	return &Member{Name: name, Gender: gender, Age: age}, nil
}

// HasStarSign reports whether a star sign has been assigned.
func (m *Member) HasStarSign() bool {
	return m.StarSign != ""
}

// Colors returns the favorite colors, or a FieldError if they were never
// assigned.
func (m *Member) Colors() ([]string, error) {
	if m.FavoriteColors == nil {
		return nil, fserrors.NewFieldError(m.Name, "favorite colors")
	}
	return m.FavoriteColors, nil
}

func (m *Member) String() string {
	return fmt.Sprintf("%s (%s, %d)", m.Name, m.Gender, m.Age)
}
