/*
Package showcase runs the family stream demos and writes their results to a
line sink.

Each demo is a Stage: it receives a freshly built dataset, builds a stream
pipeline over it with package family, and emits one line per result.

# Demos

	iterate   every record once by identity   "Name : Saket"
	filter    female members                  "Name : Komal"
	map       star signs                      "Name : Saket, Star sign - Cancer"
	flatmap   favorite colors per member      "Member Name - Saket", "Favorite Color - Red"
	match     substring quantifiers           "Family member contains name with a"
	reduce    sum of ages                     "Reduced result - 332"
	collect   names as a list                 "Saket"
	set       unique names, sorted            "Family member name Aniket"

"all" selects every demo in that order.

# Usage

	runner := showcase.NewWithConfig(showcase.Config{
		Dataset:     family.DatasetDemo,
		Logger:      logger,
		Metrics:     metrics.NewRegistry(prometheus.NewRegistry()),
		StopOnError: true,
	})
	if err := runner.AddDemos([]string{"filter", "reduce"}, showcase.Options{}); err != nil {
		return err
	}
	result, err := runner.Run(ctx, writer.New(os.Stdout))

Custom stages are added with AddStage or AddStageFunc.

# Errors

A stage error is wrapped in an *errors.OperationError naming the stage. With
StopOnError the run ends at the first failure; otherwise the remaining stages
still run and Run reports the first error. Sink failures stop the stage that
hit them.

Everything runs on the caller's goroutine.
*/
package showcase
