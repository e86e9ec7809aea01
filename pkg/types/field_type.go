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

package types

// FieldKind is the type tag of a column.
type FieldKind uint8

// Field kinds the planner works with.
const (
	KindBool FieldKind = iota
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat64
	KindString
)

var kindNames = map[FieldKind]string{
	KindBool:    "Boolean",
	KindInt32:   "Int32",
	KindUInt32:  "UInt32",
	KindInt64:   "Int64",
	KindUInt64:  "UInt64",
	KindFloat64: "Float64",
	KindString:  "Utf8",
}

// FieldType describes the type of one column produced by a plan node.
type FieldType struct {
	kind FieldKind
}

// NewFieldType builds a FieldType of the given kind.
func NewFieldType(kind FieldKind) *FieldType {
	return &FieldType{kind: kind}
}

// Kind returns the type tag.
func (ft *FieldType) Kind() FieldKind {
	return ft.kind
}

// Equal checks whether two field types are identical.
func (ft *FieldType) Equal(other *FieldType) bool {
	if ft == nil || other == nil {
		return ft == other
	}
	return ft.kind == other.kind
}

// String implements fmt.Stringer.
func (ft *FieldType) String() string {
	if name, ok := kindNames[ft.kind]; ok {
		return name
	}
	return "Unknown"
}
