package threadlog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

const dumpModule = "dump"

// Dump logs the contents of the provided value at Debug level through the
// calling goroutine's log file. It handles structs, maps, slices and basic
// types; for structs it logs all exported fields.
func (l *Service) Dump(v interface{}) {
	if l == nil || l.cell.Load() == nil {
		return
	}
	if v == nil {
		l.Debugf(dumpModule, "<nil>")
		return
	}

	// Track visited pointers to prevent infinite recursion on cycles.
	visited := make(map[uintptr]bool)
	l.dumpValue(v, "", visited, 0)
}

// dumpValue is a recursive helper function for Dump
func (l *Service) dumpValue(v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		l.Debugf(dumpModule, "%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		l.Debugf(dumpModule, "%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, with cycle detection.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				l.Debugf(dumpModule, "%s: <nil>", prefix)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				l.Debugf(dumpModule, "%s: <nil>", prefix)
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				l.Debugf(dumpModule, "%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		structName := typ.Name()
		if prefix == "" {
			l.Debugf(dumpModule, "Struct: %s", structName)
		} else {
			l.Debugf(dumpModule, "%s: %s {", prefix, structName)
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != "" {
				fieldPrefix = prefix + "." + field.Name
			}
			l.dumpValue(fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != "" {
			l.Debugf(dumpModule, "%s: }", prefix)
		}

	case reflect.Map:
		l.Debugf(dumpModule, "%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			l.dumpValue(iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		l.Debugf(dumpModule, "%s: }", prefix)

	case reflect.Slice, reflect.Array:
		l.Debugf(dumpModule, "%s: %s (len: %d) {", prefix, typ.String(), val.Len())

		// Cap the element count for large slices/arrays
		maxElements := 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				l.dumpValue(elem.Interface(), elemPrefix, visited, depth+1)
			}
		}
		if val.Len() > maxElements {
			l.Debugf(dumpModule, "%s: ... (%d more elements)", prefix, val.Len()-maxElements)
		}

		l.Debugf(dumpModule, "%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			l.Debugf(dumpModule, "%s: %v", prefix, val.Interface())
		} else {
			l.Debugf(dumpModule, "%s: %v", prefix, v)
		}
	}
}
