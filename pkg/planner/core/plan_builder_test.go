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
	"testing"

	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/expression/aggregation"
	"github.com/planfuse/planfuse/pkg/planner/core/base"
	"github.com/planfuse/planfuse/pkg/planner/core/operator/logicalop"
	"github.com/planfuse/planfuse/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestScanQualifiesColumns(t *testing.T) {
	plan, err := Scan("t",
		expression.NewColumn("", "a", types.NewFieldType(types.KindInt64)),
	).Build()
	require.NoError(t, err)
	require.Equal(t, "Column: [t.a]", plan.Schema().String())

	_, err = Scan("t").Build()
	require.ErrorContains(t, err, "requires at least one column")
}

func TestJoinSchemas(t *testing.T) {
	newRight := func() base.LogicalPlan {
		right, err := Scan("r",
			expression.NewColumn("", "k", types.NewFieldType(types.KindUInt32)),
			expression.NewColumn("", "v", types.NewFieldType(types.KindUInt32)),
		).Build()
		require.NoError(t, err)
		return right
	}
	newLeft := func() *PlanBuilder {
		return Scan("l", expression.NewColumn("", "k", types.NewFieldType(types.KindUInt32)))
	}
	on := []logicalop.EqualCondition{{Left: col("l", "k"), Right: col("r", "k")}}

	cases := []struct {
		tp     base.JoinType
		schema string
	}{
		{base.InnerJoin, "Column: [l.k,r.k,r.v]"},
		{base.LeftOuterJoin, "Column: [l.k,r.k,r.v]"},
		{base.FullOuterJoin, "Column: [l.k,r.k,r.v]"},
		{base.LeftSemiJoin, "Column: [l.k]"},
		{base.LeftAntiJoin, "Column: [l.k]"},
		{base.RightSemiJoin, "Column: [r.k,r.v]"},
		{base.RightAntiJoin, "Column: [r.k,r.v]"},
		{base.LeftMarkJoin, "Column: [l.k,mark]"},
	}
	for _, c := range cases {
		plan, err := newLeft().Join(newRight(), c.tp, on).Build()
		require.NoError(t, err)
		require.Equal(t, c.schema, plan.Schema().String(), c.tp.String())
	}
}

func TestMarkJoinOutputColumnType(t *testing.T) {
	right, err := Scan("r", expression.NewColumn("", "k", types.NewFieldType(types.KindUInt32))).Build()
	require.NoError(t, err)
	plan, err := Scan("l", expression.NewColumn("", "k", types.NewFieldType(types.KindUInt32))).
		Join(right, base.LeftMarkJoin,
			[]logicalop.EqualCondition{{Left: col("l", "k"), Right: col("r", "k")}}).
		Build()
	require.NoError(t, err)
	markCol := plan.Schema().Columns[plan.Schema().Len()-1]
	require.Equal(t, "mark", markCol.ColName)
	require.Equal(t, types.KindBool, markCol.RetType.Kind())
}

func TestAggregateSchema(t *testing.T) {
	plan, err := Scan("t",
		expression.NewColumn("", "a", types.NewFieldType(types.KindUInt32)),
		expression.NewColumn("", "b", types.NewFieldType(types.KindUInt32)),
	).
		Aggregate(
			[]expression.Expression{col("t", "a")},
			[]*aggregation.AggFuncDesc{
				aggregation.NewAggFuncDesc(aggregation.AggFuncCount, col("t", "b")),
				aggregation.NewAggFuncDesc(aggregation.AggFuncMax, col("t", "b")),
			},
		).
		Build()
	require.NoError(t, err)
	require.Equal(t, "Column: [t.a,count(t.b),max(t.b)]", plan.Schema().String())
	cols := plan.Schema().Columns
	require.Equal(t, types.KindInt64, cols[1].RetType.Kind())
	require.Equal(t, types.KindUInt32, cols[2].RetType.Kind())

	_, err = Scan("t", expression.NewColumn("", "a", types.NewFieldType(types.KindUInt32))).
		Aggregate(nil, nil).Build()
	require.ErrorContains(t, err, "aggregate requires")
}

func TestBuilderErrorSticks(t *testing.T) {
	_, err := Scan("t").
		Filter(expression.NewConstant(true, types.NewFieldType(types.KindBool))).
		Projection(col("t", "a")).
		Build()
	require.ErrorContains(t, err, "requires at least one column")
}

func TestJoinNilRight(t *testing.T) {
	_, err := Scan("t", expression.NewColumn("", "a", types.NewFieldType(types.KindUInt32))).
		Join(nil, base.InnerJoin, nil).Build()
	require.ErrorContains(t, err, "join requires a right input")
}
