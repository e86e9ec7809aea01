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
)

// LogicalSelection filters rows by a conjunction of conditions. Its schema is
// its child's schema.
type LogicalSelection struct {
	baseLogicalPlan

	Conditions []expression.Expression
}

// Init initializes LogicalSelection.
func (p LogicalSelection) Init() *LogicalSelection {
	p.baseLogicalPlan = newBaseLogicalPlan(TypeSelection)
	return &p
}

// ExplainInfo implements base.LogicalPlan.
func (p *LogicalSelection) ExplainInfo() string {
	strs := make([]string, 0, len(p.Conditions))
	for _, cond := range p.Conditions {
		strs = append(strs, cond.String())
	}
	return "Filter: " + strings.Join(strs, " AND ")
}
