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
)

// LogicalProjection computes one output column per expression.
type LogicalProjection struct {
	baseLogicalPlan

	Exprs []expression.Expression
}

// Init initializes LogicalProjection.
func (p LogicalProjection) Init() *LogicalProjection {
	p.baseLogicalPlan = newBaseLogicalPlan(TypeProjection)
	return &p
}

// ExplainInfo implements base.LogicalPlan.
func (p *LogicalProjection) ExplainInfo() string {
	return "Projection: " + expression.StringifyExprs(p.Exprs)
}
