package main

import (
	"fmt"

	kst "github.com/kst-dev/kst"
	"github.com/kst-dev/kst/internal/coursefile"
	"github.com/kst-dev/kst/validation"
)

// loadCore parses the configured course file and runs the full C2→C3
// pipeline, returning the aggregate core plus its build-time validation
// report.
func loadCore() (*kst.CourseCore, validation.Report, error) {
	course, err := coursefile.Load(coursePath)
	if err != nil {
		return nil, validation.Report{}, err
	}
	dom, err := course.BuildDomain()
	if err != nil {
		return nil, validation.Report{}, err
	}
	core, report, err := kst.NewCourseCore(dom, course.Edges(), maxStates, learningSp, strict)
	if err != nil {
		return nil, report, err
	}
	return core, report, nil
}

func printReport(report validation.Report) {
	for _, c := range report.Checks {
		status := "ok"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s: %s\n", status, c.Name, c.Message)
	}
}
