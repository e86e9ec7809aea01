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

	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/planner/core/base"
	"github.com/planfuse/planfuse/pkg/planner/core/operator/logicalop"
	"github.com/planfuse/planfuse/pkg/planner/util/optimizetrace"
	"github.com/planfuse/planfuse/pkg/util/logutil"
	"go.uber.org/zap"
)

// GroupJoinFusion fuses an aggregation sitting directly above a left outer
// equi-join into a single group join node, so the aggregates are computed
// while probing instead of in a second grouping pass. See Moerkotte and
// Neumann, "Accelerating Queries with Group-By and Join by Groupjoin",
// VLDB 2011.
//
// The fusion fires when the join type is exactly LeftOuterJoin and the
// aggregation's grouping keys equal the join's left-side equi-keys as a
// multiset. Grouping sets disqualify it: the group join supports flat
// grouping only.
type GroupJoinFusion struct {
}

// Name implements base.LogicalOptRule.
func (*GroupJoinFusion) Name() string {
	return "group_by_and_join_to_group_join"
}

// SupportsRewrite implements base.LogicalOptRule.
func (*GroupJoinFusion) SupportsRewrite() bool {
	return true
}

// Optimize implements base.LogicalOptRule. The tree is walked top down so an
// aggregation is visited before its inputs; every matching pair is replaced
// by one fused join node that re-points at the pair's child subtrees. Matched
// nodes are never mutated, and an unmatched tree comes back untouched with
// the changed flag false.
func (r *GroupJoinFusion) Optimize(_ context.Context, p base.LogicalPlan, op *optimizetrace.LogicalOptimizeOp) (base.LogicalPlan, bool, error) {
	p, changed := r.rewrite(p, op)
	return p, changed, nil
}

func (r *GroupJoinFusion) rewrite(p base.LogicalPlan, op *optimizetrace.LogicalOptimizeOp) (base.LogicalPlan, bool) {
	p, changed := r.tryFuse(p, op)
	for i, child := range p.Children() {
		newChild, childChanged := r.rewrite(child, op)
		if childChanged {
			p.SetChild(i, newChild)
			changed = true
		}
	}
	return p, changed
}

// tryFuse performs the single-node rewrite: it matches an aggregation whose
// direct input is a left outer join with aligned keys and returns the fused
// group join. On no match it returns p itself.
func (r *GroupJoinFusion) tryFuse(p base.LogicalPlan, op *optimizetrace.LogicalOptimizeOp) (base.LogicalPlan, bool) {
	agg, ok := p.(*logicalop.LogicalAggregation)
	if !ok {
		return p, false
	}
	join, ok := agg.Children()[0].(*logicalop.LogicalJoin)
	if !ok || join.JoinType != base.LeftOuterJoin {
		return p, false
	}
	if !isGroupJoin(agg.GroupByItems, join.EqualConditions) {
		return p, false
	}

	fused := logicalop.LogicalJoin{
		JoinType:        base.LeftGroupJoin,
		Constraint:      join.Constraint,
		EqualConditions: join.EqualConditions,
		OtherConditions: join.OtherConditions,
		NullEqualsNull:  join.NullEqualsNull,
		GroupExprs:      agg.GroupByItems,
		AggrExprs:       agg.AggFuncs,
	}.Init()
	fused.SetChildren(join.Children()...)
	// Grouped rows replace joined rows, so the fused node produces the
	// aggregation's schema, not the join's.
	fused.SetSchema(agg.Schema())

	op.AppendStepToCurrent(r.Name(),
		func() string {
			return "grouping keys equal the join's left-side equi-keys"
		},
		func() string {
			return "aggregation over left outer join fused into group join"
		})
	logutil.BgLogger().Debug("fused group by and join into group join",
		zap.String("rule", r.Name()),
		zap.String("join", fused.ExplainInfo()))
	return fused, true
}

// isGroupJoin checks whether the grouping keys and the left-side equi-keys
// are equal as multisets under syntactic equality. A grouping set anywhere in
// the group-by list disqualifies the fusion.
func isGroupJoin(groupByItems []expression.Expression, on []logicalop.EqualCondition) bool {
	if len(groupByItems) == 0 || len(groupByItems) != len(on) {
		return false
	}
	for _, item := range groupByItems {
		if _, ok := item.(*expression.GroupingSet); ok {
			return false
		}
	}
	matched := make([]bool, len(on))
	for _, item := range groupByItems {
		found := false
		for i, key := range on {
			if matched[i] {
				continue
			}
			if item.Equal(key.Left) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
