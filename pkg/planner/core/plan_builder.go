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

package core

import (
	"github.com/pingcap/errors"
	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/expression/aggregation"
	"github.com/planfuse/planfuse/pkg/planner/core/base"
	"github.com/planfuse/planfuse/pkg/planner/core/operator/logicalop"
	"github.com/planfuse/planfuse/pkg/types"
)

// PlanBuilder assembles logical plan trees programmatically, computing the
// output schema of every node the way the binder would. Methods chain; the
// first error sticks and surfaces at Build.
type PlanBuilder struct {
	plan base.LogicalPlan
	err  error
}

// Scan starts a builder on a table scan producing the given columns,
// qualified by the table name.
func Scan(table string, cols ...*expression.Column) *PlanBuilder {
	if len(cols) == 0 {
		return &PlanBuilder{err: errors.Errorf("table scan on %s requires at least one column", table)}
	}
	qualified := make([]*expression.Column, 0, len(cols))
	for _, col := range cols {
		qualified = append(qualified, &expression.Column{TblName: table, ColName: col.ColName, RetType: col.RetType})
	}
	ts := logicalop.LogicalTableScan{TableName: table}.Init()
	ts.SetSchema(expression.NewSchema(qualified...))
	return &PlanBuilder{plan: ts}
}

// Join joins the built plan with right on the given equi-key pairs. Semi and
// anti joins keep the preserving side's schema; a left mark join appends a
// boolean mark column to the left schema; every other shape concatenates the
// two input schemas.
func (b *PlanBuilder) Join(right base.LogicalPlan, tp base.JoinType, on []logicalop.EqualCondition) *PlanBuilder {
	if b.err != nil {
		return b
	}
	if right == nil {
		b.err = errors.New("join requires a right input")
		return b
	}
	join := logicalop.LogicalJoin{
		JoinType:        tp,
		Constraint:      base.JoinConstraintOn,
		EqualConditions: on,
	}.Init()
	join.SetChildren(b.plan, right)
	switch tp {
	case base.LeftSemiJoin, base.LeftAntiJoin:
		join.SetSchema(b.plan.Schema().Clone())
	case base.RightSemiJoin, base.RightAntiJoin:
		join.SetSchema(right.Schema().Clone())
	case base.LeftMarkJoin:
		markCol := &expression.Column{ColName: "mark", RetType: types.NewFieldType(types.KindBool)}
		join.SetSchema(expression.NewSchema(append(b.plan.Schema().Clone().Columns, markCol)...))
	default:
		join.SetSchema(expression.MergeSchema(b.plan.Schema(), right.Schema()))
	}
	b.plan = join
	return b
}

// Filter wraps the built plan in a selection over the given conjuncts.
func (b *PlanBuilder) Filter(conds ...expression.Expression) *PlanBuilder {
	if b.err != nil {
		return b
	}
	sel := logicalop.LogicalSelection{Conditions: conds}.Init()
	sel.SetChildren(b.plan)
	sel.SetSchema(b.plan.Schema().Clone())
	b.plan = sel
	return b
}

// Projection wraps the built plan in a projection. Plain column expressions
// keep their identity; any other expression produces a column named by its
// display form.
func (b *PlanBuilder) Projection(exprs ...expression.Expression) *PlanBuilder {
	if b.err != nil {
		return b
	}
	proj := logicalop.LogicalProjection{Exprs: exprs}.Init()
	proj.SetChildren(b.plan)
	cols := make([]*expression.Column, 0, len(exprs))
	for _, expr := range exprs {
		cols = append(cols, columnForExpr(expr))
	}
	proj.SetSchema(expression.NewSchema(cols...))
	b.plan = proj
	return b
}

// Aggregate groups the built plan. The output schema is the grouping columns
// followed by one column per aggregate, named by the aggregate's display
// form, mirroring how the fused group join will expose its output.
func (b *PlanBuilder) Aggregate(groupBy []expression.Expression, aggFuncs []*aggregation.AggFuncDesc) *PlanBuilder {
	if b.err != nil {
		return b
	}
	if len(groupBy) == 0 && len(aggFuncs) == 0 {
		b.err = errors.New("aggregate requires group-by items or aggregate functions")
		return b
	}
	agg := logicalop.LogicalAggregation{GroupByItems: groupBy, AggFuncs: aggFuncs}.Init()
	agg.SetChildren(b.plan)
	cols := make([]*expression.Column, 0, len(groupBy)+len(aggFuncs))
	for _, item := range groupBy {
		cols = append(cols, columnForExpr(item))
	}
	for _, af := range aggFuncs {
		cols = append(cols, &expression.Column{ColName: af.String(), RetType: af.OutputType()})
	}
	agg.SetSchema(expression.NewSchema(cols...))
	b.plan = agg
	return b
}

// Build returns the assembled plan.
func (b *PlanBuilder) Build() (base.LogicalPlan, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}

func columnForExpr(expr expression.Expression) *expression.Column {
	if col, ok := expr.(*expression.Column); ok {
		return col.Clone()
	}
	return &expression.Column{ColName: expr.String()}
}
