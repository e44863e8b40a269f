package Compliance

import (
	"RoutineMaster/Models"
)

// RangeStatus classifies a measured value against a task's acceptance
// range.
type RangeStatus string

const (
	RangeNormal RangeStatus = "NORMAL"
	RangeLow    RangeStatus = "LOW"
	RangeHigh   RangeStatus = "HIGH"
)

// ClassifyValue compares a value against optional bounds. A nil bound
// means unbounded on that side. The low check runs first, so a task
// misconfigured with min > max always reports LOW; that precedence is
// observable and kept stable.
func ClassifyValue(value float64, min, max *float64) RangeStatus {
	if min != nil && value < *min {
		return RangeLow
	}
	if max != nil && value > *max {
		return RangeHigh
	}
	return RangeNormal
}

// CompletionRange classifies a completion's reading against its task.
// Checklist tasks and completions without a reading are always NORMAL.
func CompletionRange(task Models.Task, completion *Models.TaskCompletion) RangeStatus {
	if task.Kind != Models.KindMeasurement || completion == nil || completion.MeasuredValue == nil {
		return RangeNormal
	}
	return ClassifyValue(*completion.MeasuredValue, task.MinVal, task.MaxVal)
}
