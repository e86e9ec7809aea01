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
	"strings"

	"github.com/planfuse/planfuse/pkg/planner/core/base"
)

// ToString explains a plan, returning one line per node with children
// indented two spaces under their parent. The node lines are the stable
// external representation used in explain plans and tests.
func ToString(p base.LogicalPlan) string {
	var sb strings.Builder
	toString(p, &sb, 0)
	return sb.String()
}

func toString(p base.LogicalPlan, sb *strings.Builder, depth int) {
	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(p.ExplainInfo())
	for _, child := range p.Children() {
		toString(child, sb, depth+1)
	}
}
