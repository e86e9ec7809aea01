// Copyright 2026 Planfuse Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logicalop

import (
	"strings"

	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/expression/aggregation"
	"github.com/planfuse/planfuse/pkg/planner/core/base"
)

// EqualCondition is one equality conjunct of the join predicate, as a pair of
// a left-input and a right-input expression.
type EqualCondition struct {
	Left  expression.Expression
	Right expression.Expression
}

// String implements fmt.Stringer.
func (ec EqualCondition) String() string {
	return ec.Left.String() + " = " + ec.Right.String()
}

// LogicalJoin is the logical join operator. For a LeftGroupJoin the node also
// carries the grouping and aggregate expressions of the aggregation it
// absorbed, and its schema is the aggregation's output schema rather than the
// concatenated input schemas.
type LogicalJoin struct {
	baseLogicalPlan

	JoinType   base.JoinType
	Constraint base.JoinConstraint
	// EqualConditions are the equi-key pairs of the join predicate.
	EqualConditions []EqualCondition
	// OtherConditions are post-join filter conjuncts beyond the equi-keys.
	OtherConditions []expression.Expression
	// NullEqualsNull makes NULL join keys compare equal.
	NullEqualsNull bool

	// GroupExprs and AggrExprs are set iff JoinType is LeftGroupJoin.
	GroupExprs []expression.Expression
	AggrExprs  []*aggregation.AggFuncDesc
}

// Init initializes LogicalJoin.
func (p LogicalJoin) Init() *LogicalJoin {
	p.baseLogicalPlan = newBaseLogicalPlan(TypeJoin)
	return &p
}

// ExplainInfo implements base.LogicalPlan.
func (p *LogicalJoin) ExplainInfo() string {
	var b strings.Builder
	b.WriteString(p.JoinType.String())
	b.WriteString(" Join")
	sep := ": "
	for _, eq := range p.EqualConditions {
		b.WriteString(sep)
		b.WriteString(eq.String())
		sep = ", "
	}
	if len(p.OtherConditions) > 0 {
		b.WriteString(sep)
		b.WriteString("filter=[")
		b.WriteString(expression.StringifyExprs(p.OtherConditions))
		b.WriteString("]")
		sep = ", "
	}
	if p.JoinType == base.LeftGroupJoin {
		b.WriteString(sep)
		b.WriteString("group=[")
		b.WriteString(expression.StringifyExprs(p.GroupExprs))
		b.WriteString("], aggr=[")
		b.WriteString(stringifyAggFuncs(p.AggrExprs))
		b.WriteString("]")
	}
	return b.String()
}

func stringifyAggFuncs(aggFuncs []*aggregation.AggFuncDesc) string {
	strs := make([]string, 0, len(aggFuncs))
	for _, af := range aggFuncs {
		strs = append(strs, af.String())
	}
	return strings.Join(strs, ", ")
}
