package family

import (
	"testing"

	"github.com/saketk/familystream/internal/testutil"
	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

func TestNewMember(t *testing.T) {
	tests := []struct {
		name      string
		memberOf  string
		gender    Gender
		age       int
		wantField string
	}{
		{"valid", "Saket", Male, 36, ""},
		{"newborn", "Baby", Female, 0, ""},
		{"empty name", "", Male, 10, "name"},
		{"negative age", "Bunny", Male, -3, "age"},
		{"zero gender", "Nobody", Gender(0), 1, "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMember(tt.memberOf, tt.gender, tt.age)
			if tt.wantField == "" {
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, m.Name, tt.memberOf)
				testutil.AssertEqual(t, m.HasStarSign(), false)
				if m.FavoriteColors != nil {
					t.Errorf("FavoriteColors = %v, want unset", m.FavoriteColors)
				}
				return
			}

			verr, ok := err.(*fserrors.ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
			}
			testutil.AssertEqual(t, verr.Field, tt.wantField)
		})
	}
}

func TestGender(t *testing.T) {
	testutil.AssertEqual(t, Male.String(), "MALE")
	testutil.AssertEqual(t, Female.String(), "FEMALE")
	testutil.AssertEqual(t, Gender(7).String(), "Gender(7)")

	g, err := ParseGender(" female ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g, Female)

	g, err = ParseGender("Male")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g, Male)

	_, err = ParseGender("other")
	if !fserrors.IsValidationError(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestColorsBeforeAssignment(t *testing.T) {
	m := &Member{Name: "Komal", Gender: Female, Age: 31}

	_, err := m.Colors()
	testutil.AssertErrorIs(t, err, fserrors.ErrUninitializedField)

	m.FavoriteColors = []string{}
	colors, err := m.Colors()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(colors), 0)
}

func TestDatasets(t *testing.T) {
	demo := DemoFamily()
	testutil.AssertEqual(t, len(demo), 9)
	testutil.AssertEqual(t, demo[0].Name, "Saket")
	testutil.AssertEqual(t, demo[8].Name, "Vishket")
	testutil.AssertNotEqual(t, demo[6], demo[7])
	testutil.AssertEqual(t, demo[6].Name, demo[7].Name)
	testutil.AssertEqual(t, demo[6].Age, demo[7].Age)

	core := CoreFamily()
	testutil.AssertEqual(t, len(core), 7)

	shared := SharedFamily()
	testutil.AssertEqual(t, len(shared), 9)
	testutil.AssertEqual(t, shared[6], shared[7])
	testutil.AssertEqual(t, shared[7], shared[8])

	// Each call builds new records
	testutil.AssertNotEqual(t, CoreFamily()[0], core[0])
}

func TestDataset(t *testing.T) {
	for _, name := range DatasetNames() {
		members, err := Dataset(name)
		testutil.AssertNoError(t, err)
		if len(members) == 0 {
			t.Errorf("dataset %q is empty", name)
		}
	}

	_, err := Dataset("cousins")
	if !fserrors.IsValidationError(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestStarSignOf(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"Saket", "Cancer", true},
		{"Komal", "Scorpio", true},
		{"Bunny", "Virgo", true},
		{"Daddy", "Sagittarius", true},
		{"Mummy", "Libra", true},
		{"Vishket", "Aquarius", true},
		{"Aniket", "Leo", true},
		{"aniket", "", false},
		{"Uncle", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StarSignOf(tt.name)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, ok, tt.wantOK)
		})
	}
}

func TestAssignStarSign(t *testing.T) {
	aniket := &Member{Name: "Aniket", Gender: Male, Age: 35}
	got := AssignStarSign(aniket)

	testutil.AssertEqual(t, got, aniket) // same record, not a copy
	testutil.AssertEqual(t, aniket.StarSign, "Leo")

	uncle := &Member{Name: "Uncle", Gender: Male, Age: 50}
	AssignStarSign(uncle)
	testutil.AssertEqual(t, uncle.HasStarSign(), false)
}
