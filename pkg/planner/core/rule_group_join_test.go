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
	"context"
	"testing"

	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/expression/aggregation"
	"github.com/planfuse/planfuse/pkg/planner/core/base"
	"github.com/planfuse/planfuse/pkg/planner/core/operator/logicalop"
	"github.com/planfuse/planfuse/pkg/planner/util/optimizetrace"
	"github.com/planfuse/planfuse/pkg/types"
	"github.com/stretchr/testify/require"
)

func col(tbl, name string) *expression.Column {
	return expression.NewColumn(tbl, name, types.NewFieldType(types.KindUInt32))
}

func buildRightScan(t *testing.T) base.LogicalPlan {
	right, err := Scan("right",
		expression.NewColumn("", "key", types.NewFieldType(types.KindUInt32)),
		expression.NewColumn("", "value", types.NewFieldType(types.KindUInt32)),
	).Build()
	require.NoError(t, err)
	return right
}

// buildAggOverJoin builds Aggregate(group, aggr) over a join of left and
// right on the given keys.
func buildAggOverJoin(t *testing.T, joinTp base.JoinType, on []logicalop.EqualCondition, group []expression.Expression) base.LogicalPlan {
	plan, err := Scan("left",
		expression.NewColumn("", "key", types.NewFieldType(types.KindUInt32)),
		expression.NewColumn("", "other", types.NewFieldType(types.KindUInt32)),
	).
		Join(buildRightScan(t), joinTp, on).
		Aggregate(group, []*aggregation.AggFuncDesc{
			aggregation.NewAggFuncDesc(aggregation.AggFuncMax, col("right", "value")),
		}).
		Build()
	require.NoError(t, err)
	return plan
}

func defaultOn() []logicalop.EqualCondition {
	return []logicalop.EqualCondition{{Left: col("left", "key"), Right: col("right", "key")}}
}

func applyRule(t *testing.T, plan base.LogicalPlan) (base.LogicalPlan, bool, *optimizetrace.LogicalOptimizeOp) {
	rule := &GroupJoinFusion{}
	op := optimizetrace.DefaultLogicalOptimizeOption()
	newPlan, changed, err := rule.Optimize(context.Background(), plan, op)
	require.NoError(t, err)
	return newPlan, changed, op
}

func TestGroupJoinFusionFires(t *testing.T) {
	plan := buildAggOverJoin(t, base.LeftOuterJoin, defaultOn(),
		[]expression.Expression{col("left", "key")})

	newPlan, changed, op := applyRule(t, plan)
	require.True(t, changed)
	expected := "LeftGroup Join: left.key = right.key, group=[left.key], aggr=[max(right.value)]\n" +
		"  TableScan: left\n" +
		"  TableScan: right"
	require.Equal(t, expected, ToString(newPlan))

	join, ok := newPlan.(*logicalop.LogicalJoin)
	require.True(t, ok)
	require.Equal(t, base.LeftGroupJoin, join.JoinType)
	// the fused node exposes the aggregation's schema, not the join's
	require.Equal(t, 2, join.Schema().Len())
	require.Equal(t, "left.key", join.Schema().Columns[0].String())
	require.Equal(t, "max(right.value)", join.Schema().Columns[1].String())

	steps := op.Steps()
	require.Len(t, steps, 1)
	require.Equal(t, "group_by_and_join_to_group_join", steps[0].RuleName)
}

func TestGroupJoinFusionIdempotent(t *testing.T) {
	plan := buildAggOverJoin(t, base.LeftOuterJoin, defaultOn(),
		[]expression.Expression{col("left", "key")})

	once, changed, _ := applyRule(t, plan)
	require.True(t, changed)
	onceStr := ToString(once)

	twice, changed, _ := applyRule(t, once)
	require.False(t, changed)
	require.Same(t, once, twice)
	require.Equal(t, onceStr, ToString(twice))
}

func TestGroupJoinFusionWrongJoinType(t *testing.T) {
	for _, tp := range []base.JoinType{
		base.InnerJoin, base.RightOuterJoin, base.FullOuterJoin,
		base.LeftSemiJoin, base.LeftMarkJoin,
	} {
		plan := buildAggOverJoin(t, tp, defaultOn(),
			[]expression.Expression{col("left", "key")})
		before := ToString(plan)
		newPlan, changed, op := applyRule(t, plan)
		require.False(t, changed, tp.String())
		require.Same(t, plan, newPlan)
		require.Equal(t, before, ToString(newPlan))
		require.Empty(t, op.Steps())
	}
}

func TestGroupJoinFusionKeyMisalignment(t *testing.T) {
	plan := buildAggOverJoin(t, base.LeftOuterJoin, defaultOn(),
		[]expression.Expression{col("left", "other")})
	newPlan, changed, _ := applyRule(t, plan)
	require.False(t, changed)
	require.Same(t, plan, newPlan)
}

func TestGroupJoinFusionGroupingSetDisqualifies(t *testing.T) {
	plan := buildAggOverJoin(t, base.LeftOuterJoin, defaultOn(),
		[]expression.Expression{expression.RollupGroupingSet(col("left", "key"))})
	newPlan, changed, _ := applyRule(t, plan)
	require.False(t, changed)
	require.Same(t, plan, newPlan)
}

func TestGroupJoinFusionBelowRoot(t *testing.T) {
	plan := buildAggOverJoin(t, base.LeftOuterJoin, defaultOn(),
		[]expression.Expression{col("left", "key")})
	root, err := (&PlanBuilder{plan: plan}).Projection(col("left", "key")).Build()
	require.NoError(t, err)

	newPlan, changed, _ := applyRule(t, root)
	require.True(t, changed)
	expected := "Projection: left.key\n" +
		"  LeftGroup Join: left.key = right.key, group=[left.key], aggr=[max(right.value)]\n" +
		"    TableScan: left\n" +
		"    TableScan: right"
	require.Equal(t, expected, ToString(newPlan))
}

func TestIsGroupJoinMultisetPredicate(t *testing.T) {
	lk, lo := col("left", "key"), col("left", "other")
	rk, rv := col("right", "key"), col("right", "value")
	twoKeys := []logicalop.EqualCondition{
		{Left: lk, Right: rk},
		{Left: lo, Right: rv},
	}

	// reordered grouping keys still align
	require.True(t, isGroupJoin([]expression.Expression{lo, lk}, twoKeys))
	// a subset of the keys does not
	require.False(t, isGroupJoin([]expression.Expression{lk}, twoKeys))
	// nor a superset
	require.False(t, isGroupJoin([]expression.Expression{lk, lo, lk}, twoKeys))
	// duplicates must match key multiplicity
	dupKeys := []logicalop.EqualCondition{
		{Left: lk, Right: rk},
		{Left: lk, Right: rv},
	}
	require.True(t, isGroupJoin([]expression.Expression{lk, lk}, dupKeys))
	require.False(t, isGroupJoin([]expression.Expression{lk, lk}, twoKeys))
	// a first-key match alone is not enough
	require.False(t, isGroupJoin([]expression.Expression{lk, rv}, twoKeys))
	// empty grouping never fuses
	require.False(t, isGroupJoin(nil, twoKeys))
}

func TestGroupJoinFusionCarriesJoinFields(t *testing.T) {
	on := defaultOn()
	filter := expression.NewFunction(expression.GT, col("right", "value"),
		expression.NewConstant(uint32(10), types.NewFieldType(types.KindUInt32)))
	right := buildRightScan(t)
	joinBuilder := Scan("left",
		expression.NewColumn("", "key", types.NewFieldType(types.KindUInt32)),
	).Join(right, base.LeftOuterJoin, on)
	joinPlan, err := joinBuilder.Build()
	require.NoError(t, err)
	join := joinPlan.(*logicalop.LogicalJoin)
	join.OtherConditions = []expression.Expression{filter}
	join.NullEqualsNull = true
	join.Constraint = base.JoinConstraintUsing

	plan, err := (&PlanBuilder{plan: join}).Aggregate(
		[]expression.Expression{col("left", "key")},
		[]*aggregation.AggFuncDesc{aggregation.NewAggFuncDesc(aggregation.AggFuncCount, col("right", "value"))},
	).Build()
	require.NoError(t, err)

	newPlan, changed, _ := applyRule(t, plan)
	require.True(t, changed)
	fused := newPlan.(*logicalop.LogicalJoin)
	require.Equal(t, base.LeftGroupJoin, fused.JoinType)
	require.Equal(t, base.JoinConstraintUsing, fused.Constraint)
	require.True(t, fused.NullEqualsNull)
	require.Equal(t, on, fused.EqualConditions)
	require.Len(t, fused.OtherConditions, 1)
	require.True(t, fused.OtherConditions[0].Equal(filter))
	// child subtrees are shared, not cloned
	require.Same(t, join.Children()[0], fused.Children()[0])
	require.Same(t, right, fused.Children()[1])
}

func TestGroupJoinRuleContract(t *testing.T) {
	var rule base.LogicalOptRule = &GroupJoinFusion{}
	require.Equal(t, "group_by_and_join_to_group_join", rule.Name())
	require.True(t, rule.SupportsRewrite())
}
