package family

import (
	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

// Dataset names accepted by Dataset.
const (
	DatasetDemo   = "demo"
	DatasetCore   = "core"
	DatasetShared = "shared"
)

// DatasetNames lists the names accepted by Dataset.
func DatasetNames() []string {
	return []string{DatasetDemo, DatasetCore, DatasetShared}
}

// CoreFamily returns the seven distinct family records in declared order.
// Every call builds new records.
func CoreFamily() []*Member {
	return []*Member{
		{Name: "Saket", Gender: Male, Age: 36},
		{Name: "Komal", Gender: Female, Age: 31},
		{Name: "Daddy", Gender: Male, Age: 70},
		{Name: "Mummy", Gender: Female, Age: 61},
		{Name: "Bunny", Gender: Male, Age: 3},
		{Name: "Aniket", Gender: Male, Age: 35},
		{Name: "Vishket", Gender: Male, Age: 32},
	}
}

// DemoFamily returns CoreFamily followed by two more separately built
// "Vishket" records, nine in total. The three Vishkets are equal field by
// field but are different records.
func DemoFamily() []*Member {
	return append(CoreFamily(),
		&Member{Name: "Vishket", Gender: Male, Age: 32},
		&Member{Name: "Vishket", Gender: Male, Age: 32},
	)
}

// SharedFamily returns CoreFamily with the same Vishket record appended two
// more times, nine entries holding seven records.
func SharedFamily() []*Member {
	members := CoreFamily()
	vishket := members[len(members)-1]
	return append(members, vishket, vishket)
}

// Dataset returns a fresh copy of the named dataset.
func Dataset(name string) ([]*Member, error) {
	switch name {
	case DatasetDemo:
		return DemoFamily(), nil
	case DatasetCore:
		return CoreFamily(), nil
	case DatasetShared:
		return SharedFamily(), nil
	}
	return nil, fserrors.NewValidationError("family", "dataset", name, "unknown dataset").
		WithHint("use demo, core or shared")
}
