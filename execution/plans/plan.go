package plans

type PlanType int

const (
	SeqScan PlanType = iota
	Materialization
)

// Plan is an immutable description of one operation. Plans form a tree
// built by the (external) planner and outlive the executors built from
// them.
type Plan interface {
	GetChildAt(childIdx uint32) Plan
	GetChildren() []Plan
	GetType() PlanType
	GetDebugStr() string
}

type AbstractPlanNode struct {
	children []Plan
}

func (p *AbstractPlanNode) GetChildAt(childIdx uint32) Plan {
	if childIdx >= uint32(len(p.children)) {
		return nil
	}
	return p.children[childIdx]
}

func (p *AbstractPlanNode) GetChildren() []Plan {
	return p.children
}
