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
	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/planner/core/base"
)

// Operator type names used in traces.
const (
	TypeJoin       = "Join"
	TypeAgg        = "Aggregation"
	TypeTableScan  = "TableScan"
	TypeSelection  = "Selection"
	TypeProjection = "Projection"
)

// baseLogicalPlan holds the children and output schema shared by all logical
// operators.
type baseLogicalPlan struct {
	tp       string
	children []base.LogicalPlan
	schema   *expression.Schema
}

func newBaseLogicalPlan(tp string) baseLogicalPlan {
	return baseLogicalPlan{tp: tp}
}

// Schema implements base.LogicalPlan.
func (p *baseLogicalPlan) Schema() *expression.Schema {
	return p.schema
}

// SetSchema sets the output schema of the node.
func (p *baseLogicalPlan) SetSchema(schema *expression.Schema) {
	p.schema = schema
}

// Children implements base.LogicalPlan.
func (p *baseLogicalPlan) Children() []base.LogicalPlan {
	return p.children
}

// SetChildren implements base.LogicalPlan.
func (p *baseLogicalPlan) SetChildren(children ...base.LogicalPlan) {
	p.children = children
}

// SetChild implements base.LogicalPlan.
func (p *baseLogicalPlan) SetChild(i int, child base.LogicalPlan) {
	p.children[i] = child
}

// TP implements base.LogicalPlan.
func (p *baseLogicalPlan) TP() string {
	return p.tp
}
