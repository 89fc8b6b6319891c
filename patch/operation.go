package patch

import (
	"github.com/agentflare-ai/tagtree/value"
)

// Op names an RFC 6902 operation type.
type Op string

const (
	Add     Op = "add"
	Remove  Op = "remove"
	Replace Op = "replace"
	Move    Op = "move"
	Copy    Op = "copy"
	Test    Op = "test"
)

// Operation is a single RFC 6902 patch step. Value is free (unowned)
// until the Operation is applied, at which point the engine duplicates
// it into the target tree, so one Operation can be applied repeatedly
// without its payload being consumed.
type Operation struct {
	Op    Op
	Path  string
	From  string
	Value value.Value
}

// Patch is an ordered list of operations, applied one at a time.
type Patch []Operation

// ToValue renders o as a Map value suitable for JSON serialization:
// {"op": ..., "path": ..., "from": ..., "value": ...}.
func (o Operation) ToValue() value.Value {
	m := value.Map()
	_ = m.SetText("op", string(o.Op))
	_ = m.SetText("path", o.Path)
	if o.From != "" {
		_ = m.SetText("from", o.From)
	}
	if o.Value.Valid() {
		_ = m.SetValue("value", value.Duplicate(o.Value))
	}
	return m
}

// OperationFromValue parses one operation out of its Map representation.
func OperationFromValue(v value.Value) (Operation, error) {
	if !v.IsMap() {
		return Operation{}, ErrInvalidOperation
	}
	op := Operation{
		Op:   Op(v.Get("op").AsText()),
		Path: v.Get("path").AsText(),
		From: v.Get("from").AsText(),
	}
	if val := v.Get("value"); val.Valid() {
		op.Value = value.Duplicate(val)
	}
	return op, nil
}

// ToValue renders p as a JSON Patch document: an array of operation
// objects.
func (p Patch) ToValue() value.Value {
	arr := value.Array()
	for _, op := range p {
		_ = arr.InsertTail(op.ToValue())
	}
	return arr
}

// FromValue parses a JSON Patch document (an array of operation
// objects) into a Patch.
func FromValue(v value.Value) (Patch, error) {
	if !v.IsArray() {
		return nil, ErrInvalidOperation
	}
	p := make(Patch, 0, v.Size())
	for item := v.First(); item.Valid(); item = v.Next(item) {
		op, err := OperationFromValue(item)
		if err != nil {
			return nil, err
		}
		p = append(p, op)
	}
	return p, nil
}
