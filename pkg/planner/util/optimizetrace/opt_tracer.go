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

package optimizetrace

// RuleStep is one recorded rule action.
type RuleStep struct {
	RuleName string
	Reason   string
	Action   string
}

// LogicalOptimizeOp collects the steps rules record during one logical
// optimization run. A nil op is valid and records nothing, so production
// paths pay only a nil check.
type LogicalOptimizeOp struct {
	steps []RuleStep
}

// DefaultLogicalOptimizeOption returns a recording LogicalOptimizeOp.
func DefaultLogicalOptimizeOption() *LogicalOptimizeOp {
	return &LogicalOptimizeOp{}
}

// AppendStepToCurrent appends a step of the current rule action. The reason
// and action texts are built lazily so untraced runs skip the formatting.
func (op *LogicalOptimizeOp) AppendStepToCurrent(ruleName string, reason, action func() string) {
	if op == nil {
		return
	}
	op.steps = append(op.steps, RuleStep{RuleName: ruleName, Reason: reason(), Action: action()})
}

// Steps returns the recorded steps in application order.
func (op *LogicalOptimizeOp) Steps() []RuleStep {
	if op == nil {
		return nil
	}
	return op.steps
}
