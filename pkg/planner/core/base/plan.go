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

package base

import (
	"context"

	"github.com/planfuse/planfuse/pkg/expression"
	"github.com/planfuse/planfuse/pkg/planner/util/optimizetrace"
)

// LogicalPlan is the node contract of the logical plan tree rewrite rules
// operate on.
type LogicalPlan interface {
	// Schema returns the output schema of the node.
	Schema() *expression.Schema
	// Children returns the node's inputs, left to right.
	Children() []LogicalPlan
	// SetChildren replaces the node's inputs.
	SetChildren(children ...LogicalPlan)
	// SetChild replaces the i-th input.
	SetChild(i int, child LogicalPlan)
	// ExplainInfo returns the single explain line of this node, children
	// excluded.
	ExplainInfo() string
	// TP returns the operator type name used in traces.
	TP() string
}

// LogicalOptRule is a logical plan rewrite. Rules are stateless and safe for
// concurrent use over distinct plans.
type LogicalOptRule interface {
	// Name returns the registry name of the rule.
	Name() string
	// SupportsRewrite reports whether Optimize may return a tree different
	// from its input, so the driver can reschedule dependent passes.
	SupportsRewrite() bool
	// Optimize applies the rule and reports whether anything changed. An
	// unmatched pattern is not an error.
	Optimize(ctx context.Context, p LogicalPlan, op *optimizetrace.LogicalOptimizeOp) (LogicalPlan, bool, error)
}
