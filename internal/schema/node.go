// Package schema validates token trees and partial updates at trust
// boundaries: persisted records, imported files, and AI-generated fragments.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type kind int

const (
	kindObject kind = iota
	kindMap
	kindArray
	kindString
	kindNumber
	kindInteger
	kindBool
	kindEnum
	kindLiteral
)

// node describes the expected shape of one JSON value.
type node struct {
	kind    kind
	fields  []field
	elem    *node
	enum    []string
	literal int64
}

type field struct {
	name     string
	node     *node
	optional bool
}

// mode selects whether missing fields and value constraints are enforced.
type mode int

const (
	// modeFull validates a complete tree.
	modeFull mode = iota
	// modePartial validates a patch: absent fields are fine and enums or
	// literals are only checked for their underlying type.
	modePartial
)

func object(fields ...field) *node { return &node{kind: kindObject, fields: fields} }
func mapOf(elem *node) *node       { return &node{kind: kindMap, elem: elem} }
func arrayOf(elem *node) *node     { return &node{kind: kindArray, elem: elem} }
func str() *node                   { return &node{kind: kindString} }
func number() *node                { return &node{kind: kindNumber} }
func integer() *node               { return &node{kind: kindInteger} }
func boolean() *node               { return &node{kind: kindBool} }
func enum(values ...string) *node  { return &node{kind: kindEnum, enum: values} }
func literal(v int64) *node        { return &node{kind: kindLiteral, literal: v} }

func req(name string, n *node) field { return field{name: name, node: n} }
func opt(name string, n *node) field { return field{name: name, node: n, optional: true} }

// strs builds an object whose listed fields are all required strings.
func strs(names ...string) *node {
	fields := make([]field, len(names))
	for i, name := range names {
		fields[i] = req(name, str())
	}
	return object(fields...)
}

// decode parses JSON keeping numbers exact.
func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

type walker struct {
	mode   mode
	issues Issues
}

func (w *walker) add(path, format string, args ...any) {
	w.issues = append(w.issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// walk reports every issue under v and returns v with the offending values
// removed. In partial mode a rejected object field, map entry or array
// element is deleted from its parent; ok is false when v itself is rejected.
func (w *walker) walk(n *node, v any, path string) (clean any, ok bool) {
	if v == nil {
		w.add(path, "expected %s, got null", n.describe())
		return nil, false
	}

	switch n.kind {
	case kindObject:
		obj, isObj := v.(map[string]any)
		if !isObj {
			w.add(path, "expected object, got %s", typeName(v))
			return nil, false
		}
		known := make(map[string]bool, len(n.fields))
		for _, f := range n.fields {
			known[f.name] = true
			child, present := obj[f.name]
			if !present {
				if !f.optional && w.mode == modeFull {
					w.add(join(path, f.name), "is required")
				}
				continue
			}
			w.keep(obj, f.name, f.node, child, join(path, f.name))
		}
		for _, key := range sortedKeys(obj) {
			if !known[key] {
				w.add(join(path, key), "unknown field")
				delete(obj, key)
			}
		}
		return obj, true

	case kindMap:
		obj, isObj := v.(map[string]any)
		if !isObj {
			w.add(path, "expected object, got %s", typeName(v))
			return nil, false
		}
		for _, key := range sortedKeys(obj) {
			w.keep(obj, key, n.elem, obj[key], join(path, key))
		}
		return obj, true

	case kindArray:
		arr, isArr := v.([]any)
		if !isArr {
			w.add(path, "expected array, got %s", typeName(v))
			return nil, false
		}
		kept := make([]any, 0, len(arr))
		for i, item := range arr {
			if c, ok := w.walk(n.elem, item, path+"["+strconv.Itoa(i)+"]"); ok {
				kept = append(kept, c)
			}
		}
		return kept, true

	case kindString:
		if _, isStr := v.(string); !isStr {
			w.add(path, "expected string, got %s", typeName(v))
			return nil, false
		}

	case kindNumber:
		num, isNum := v.(json.Number)
		if !isNum {
			w.add(path, "expected number, got %s", typeName(v))
			return nil, false
		}
		if _, err := num.Float64(); err != nil {
			w.add(path, "invalid number %s", num)
			return nil, false
		}

	case kindInteger, kindLiteral:
		num, isNum := v.(json.Number)
		if !isNum {
			w.add(path, "expected integer, got %s", typeName(v))
			return nil, false
		}
		i, err := num.Int64()
		if err != nil {
			w.add(path, "expected integer, got %s", num)
			return nil, false
		}
		if n.kind == kindLiteral && w.mode == modeFull && i != n.literal {
			w.add(path, "must equal %d, got %d", n.literal, i)
		}

	case kindBool:
		if _, isBool := v.(bool); !isBool {
			w.add(path, "expected boolean, got %s", typeName(v))
			return nil, false
		}

	case kindEnum:
		s, isStr := v.(string)
		if !isStr {
			w.add(path, "expected string, got %s", typeName(v))
			return nil, false
		}
		if w.mode == modeFull && !contains(n.enum, s) {
			w.add(path, "must be one of [%s], got %q", strings.Join(n.enum, " "), s)
		}
	}
	return v, true
}

// keep walks obj[key] and stores the cleaned value, or deletes the key when
// the value is rejected.
func (w *walker) keep(obj map[string]any, key string, n *node, v any, path string) {
	if c, ok := w.walk(n, v, path); ok {
		obj[key] = c
		return
	}
	delete(obj, key)
}

func (n *node) describe() string {
	switch n.kind {
	case kindObject, kindMap:
		return "object"
	case kindArray:
		return "array"
	case kindNumber:
		return "number"
	case kindInteger, kindLiteral:
		return "integer"
	case kindBool:
		return "boolean"
	default:
		return "string"
	}
}

func typeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
