package proof

import "fmt"

// FailedToParseOodFrameError reports that a byte region of an out-of-domain
// frame could not be decoded into field elements.
type FailedToParseOodFrameError struct {
	Detail string
}

// Error implements the error interface.
func (e *FailedToParseOodFrameError) Error() string {
	return fmt.Sprintf("failed to parse ood frame: %s", e.Detail)
}

// WrongNumberOfOodTraceElementsError reports that a decoded trace region of an
// out-of-domain frame does not hold exactly trace-width elements.
type WrongNumberOfOodTraceElementsError struct {
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *WrongNumberOfOodTraceElementsError) Error() string {
	return fmt.Sprintf("wrong number of ood trace elements: expected %d, got %d", e.Expected, e.Actual)
}

// WrongNumberOfOodEvaluationElementsError reports that the decoded evaluations
// region of an out-of-domain frame does not hold exactly the expected number
// of constraint evaluations.
type WrongNumberOfOodEvaluationElementsError struct {
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *WrongNumberOfOodEvaluationElementsError) Error() string {
	return fmt.Sprintf("wrong number of ood evaluation elements: expected %d, got %d", e.Expected, e.Actual)
}
