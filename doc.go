/*
Package familystream demonstrates stream processing over an in-memory family
dataset: filtering, mapping, flat-mapping, matching, reduction and
collection.

Streams (pkg/streaming):
  - stream: Generic lazy streams over pull-based sources
  - writer: Line sinks for results

Family (pkg/family):
  - Member records and the demo datasets
  - MemberPipeline functions over stream.Stream[*Member]
  - MemberSet with reference or name identity

Runner (pkg/showcase):
  - Named demos executed in order, each over a fresh dataset

Support:
  - config: viper/pflag configuration
  - logging: zerolog setup
  - metrics: Prometheus stage metrics

Example usage:

	import (
		"github.com/saketk/familystream/pkg/family"
	)

	women := family.FilterByGender(family.Members(family.DemoFamily()), family.Female)
	names, err := family.Names(women).ToSlice(ctx) // [Komal Mummy]

	sum, ok, err := family.SumAges(ctx, family.Members(family.DemoFamily())) // 332, true

The familystream command (cmd/familystream) runs the demos from the command
line.
*/
package familystream
