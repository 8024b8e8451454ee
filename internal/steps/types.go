package steps

// StepType classifies what an explanation step does to the equation.
type StepType string

const (
	// TypeTransform is an algebraic manipulation (add, subtract, divide...).
	TypeTransform StepType = "transform"

	// TypeSimplify is a simplification of an existing expression.
	TypeSimplify StepType = "simplify"

	// TypeResult states a final or intermediate result.
	TypeResult StepType = "result"
)

// EquationStep is one discrete unit of the tutor's explanation.
// Immutable once created; only the Extractor creates them.
type EquationStep struct {
	// ID is unique within a session.
	ID string `json:"id"`

	// Index is the sequential position, starting at 0. Never reused,
	// even across interrupts.
	Index int `json:"index"`

	// Equation is the extracted equation substring, e.g. "2x = 4".
	Equation string `json:"equation"`

	// Text is the full sentence the step was derived from.
	Text string `json:"text"`

	// Type is the step classification.
	Type StepType `json:"type"`
}
