// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Result is the predicate function for result builders.
type Result func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Suite is the predicate function for suite builders.
type Suite func(*sql.Selector)

// TestCase is the predicate function for testcase builders.
type TestCase func(*sql.Selector)
