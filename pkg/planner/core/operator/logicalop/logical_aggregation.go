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
)

// LogicalAggregation represents group-by plus aggregate function evaluation.
type LogicalAggregation struct {
	baseLogicalPlan

	// GroupByItems are the grouping expressions, in order. Items may be
	// grouping sets (rollup, cube).
	GroupByItems []expression.Expression
	// AggFuncs are the aggregate functions computed per group.
	AggFuncs []*aggregation.AggFuncDesc
}

// Init initializes LogicalAggregation.
func (p LogicalAggregation) Init() *LogicalAggregation {
	p.baseLogicalPlan = newBaseLogicalPlan(TypeAgg)
	return &p
}

// ExplainInfo implements base.LogicalPlan.
func (p *LogicalAggregation) ExplainInfo() string {
	var b strings.Builder
	b.WriteString("Aggregate: groupBy=[[")
	b.WriteString(expression.StringifyExprs(p.GroupByItems))
	b.WriteString("]], aggr=[[")
	b.WriteString(stringifyAggFuncs(p.AggFuncs))
	b.WriteString("]]")
	return b.String()
}
