package input

import (
	"fmt"

	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/physics"
)

// Param is one editable coefficient and the size of a single nudge.
type Param struct {
	Name string
	Step float64
}

// WorldParams lists the World coefficients in editing order.
var WorldParams = []Param{
	{Name: "gravity", Step: physics.GravityStep},
	{Name: "restitution", Step: physics.RestitutionStep},
	{Name: "friction", Step: physics.FrictionStep},
	{Name: "drag", Step: physics.DragStep},
}

// ParamEditor nudges one selected parameter of a Configurable at a time.
// Clamping is left to the target.
type ParamEditor struct {
	target dynamo.Configurable
	params []Param
	sel    int
}

func NewParamEditor(target dynamo.Configurable, params []Param) *ParamEditor {
	return &ParamEditor{target: target, params: params}
}

// Select moves the selection by delta, wrapping at both ends.
func (e *ParamEditor) Select(delta int) Param {
	n := len(e.params)
	e.sel = ((e.sel+delta)%n + n) % n
	return e.params[e.sel]
}

func (e *ParamEditor) Selected() Param { return e.params[e.sel] }

func (e *ParamEditor) Value() float64 {
	return e.target.GetParams()[e.Selected().Name]
}

// Nudge adds steps multiples of the selected parameter's step.
func (e *ParamEditor) Nudge(steps int) error {
	p := e.Selected()
	return e.target.SetParam(p.Name, e.Value()+float64(steps)*p.Step)
}

func (e *ParamEditor) String() string {
	return fmt.Sprintf("%s %.4g", e.Selected().Name, e.Value())
}
