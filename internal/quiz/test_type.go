// Package quiz implements the typing and matching test engines, round generation, and result aggregation.
//
// Engines are driven synchronously by discrete user actions and return the events
// that a presentation layer renders. They never block, sleep, or perform I/O.
package quiz

import (
	"fmt"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

// TestType identifies one of the three quiz modes of a session.
type TestType int

const (
	TestTypeVietnameseToEnglish TestType = iota + 1
	TestTypeEnglishToVietnamese
	TestTypeMatching
)

// AllTestTypes lists every test type in presentation order.
var AllTestTypes = []TestType{
	TestTypeVietnameseToEnglish,
	TestTypeEnglishToVietnamese,
	TestTypeMatching,
}

func (t TestType) String() string {
	switch t {
	case TestTypeVietnameseToEnglish:
		return "Test 1: Vietnamese → English"
	case TestTypeEnglishToVietnamese:
		return "Test 2: English → Vietnamese"
	case TestTypeMatching:
		return "Test 3: Matching"
	default:
		return fmt.Sprintf("TestType(%d)", int(t))
	}
}

// Direction returns the typing direction of t. Matching has none.
func (t TestType) Direction() (Direction, bool) {
	switch t {
	case TestTypeVietnameseToEnglish:
		return NativeToTarget, true
	case TestTypeEnglishToVietnamese:
		return TargetToNative, true
	default:
		return 0, false
	}
}

// Direction is which language is prompted and which one is typed.
// The native language is Vietnamese and the target language is English.
type Direction int

const (
	NativeToTarget Direction = iota + 1
	TargetToNative
)

// Prompt returns the text shown to the user for entry.
func (d Direction) Prompt(entry vocabulary.Entry) string {
	if d == NativeToTarget {
		return entry.Vietnamese
	}
	return entry.English
}

// Answer returns the text the user has to type for entry.
func (d Direction) Answer(entry vocabulary.Entry) string {
	if d == NativeToTarget {
		return entry.English
	}
	return entry.Vietnamese
}
