package plans

import (
	"strings"

	"github.com/golang-collections/collections/stack"
)

type planFrame struct {
	plan  Plan
	depth int
}

// PlanTreeString renders the plan tree depth first, two spaces of indent
// per level. Iterative so arbitrarily deep trees cannot blow the stack.
func PlanTreeString(root Plan) string {
	var sb strings.Builder
	s := stack.New()
	s.Push(planFrame{plan: root, depth: 0})
	for s.Len() > 0 {
		frame := s.Pop().(planFrame)
		sb.WriteString(strings.Repeat(" ", frame.depth*2))
		sb.WriteString(frame.plan.GetDebugStr())
		sb.WriteString("\n")
		children := frame.plan.GetChildren()
		for i := len(children) - 1; i >= 0; i-- {
			s.Push(planFrame{plan: children[i], depth: frame.depth + 1})
		}
	}
	return sb.String()
}
