// Package family holds the family dataset and the pipeline stages that run
// over it.
//
// Stages are plain functions over stream.Stream[*Member]. Intermediate
// stages (FilterByGender, WithStarSigns, ExpandFavoriteColors, ...) return a
// new stream; evaluating stages (SumAges, AnyNameContains,
// CollectToSequence, ...) take a context and drain it:
//
//	members := family.DemoFamily()
//	women, err := family.CollectToSequence(ctx,
//		family.FilterByGender(family.Members(members), family.Female))
//
// Some stages write to the records they see: WithStarSigns sets StarSign and
// AssignFavoriteColors sets FavoriteColors. A member list is owned by one
// pipeline at a time; build a fresh dataset when runs must not see each
// other's writes.
package family
