// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/neonhq/neon/ent/project"
	"github.com/neonhq/neon/ent/result"
	"github.com/neonhq/neon/ent/run"
	"github.com/neonhq/neon/ent/schema"
	"github.com/neonhq/neon/ent/suite"
	"github.com/neonhq/neon/ent/testcase"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescPassed is the schema descriptor for passed field.
	resultDescPassed := resultFields[11].Descriptor()
	// result.DefaultPassed holds the default value on creation for the passed field.
	result.DefaultPassed = resultDescPassed.Default.(bool)
	// resultDescExecutionTimeMs is the schema descriptor for execution_time_ms field.
	resultDescExecutionTimeMs := resultFields[12].Descriptor()
	// result.DefaultExecutionTimeMs holds the default value on creation for the execution_time_ms field.
	result.DefaultExecutionTimeMs = resultDescExecutionTimeMs.Default.(int64)
	// resultDescCreatedAt is the schema descriptor for created_at field.
	resultDescCreatedAt := resultFields[14].Descriptor()
	// result.DefaultCreatedAt holds the default value on creation for the created_at field.
	result.DefaultCreatedAt = resultDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[12].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	suiteFields := schema.Suite{}.Fields()
	_ = suiteFields
	// suiteDescParallel is the schema descriptor for parallel field.
	suiteDescParallel := suiteFields[5].Descriptor()
	// suite.DefaultParallel holds the default value on creation for the parallel field.
	suite.DefaultParallel = suiteDescParallel.Default.(bool)
	// suiteDescStopOnFailure is the schema descriptor for stop_on_failure field.
	suiteDescStopOnFailure := suiteFields[6].Descriptor()
	// suite.DefaultStopOnFailure holds the default value on creation for the stop_on_failure field.
	suite.DefaultStopOnFailure = suiteDescStopOnFailure.Default.(bool)
	// suiteDescDefaultMinScore is the schema descriptor for default_min_score field.
	suiteDescDefaultMinScore := suiteFields[8].Descriptor()
	// suite.DefaultDefaultMinScore holds the default value on creation for the default_min_score field.
	suite.DefaultDefaultMinScore = suiteDescDefaultMinScore.Default.(float64)
	// suiteDescDefaultTimeoutSeconds is the schema descriptor for default_timeout_seconds field.
	suiteDescDefaultTimeoutSeconds := suiteFields[9].Descriptor()
	// suite.DefaultDefaultTimeoutSeconds holds the default value on creation for the default_timeout_seconds field.
	suite.DefaultDefaultTimeoutSeconds = suiteDescDefaultTimeoutSeconds.Default.(int)
	// suiteDescCreatedAt is the schema descriptor for created_at field.
	suiteDescCreatedAt := suiteFields[10].Descriptor()
	// suite.DefaultCreatedAt holds the default value on creation for the created_at field.
	suite.DefaultCreatedAt = suiteDescCreatedAt.Default.(func() time.Time)
	// suiteDescUpdatedAt is the schema descriptor for updated_at field.
	suiteDescUpdatedAt := suiteFields[11].Descriptor()
	// suite.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	suite.DefaultUpdatedAt = suiteDescUpdatedAt.Default.(func() time.Time)
	// suite.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	suite.UpdateDefaultUpdatedAt = suiteDescUpdatedAt.UpdateDefault.(func() time.Time)
	testcaseFields := schema.TestCase{}.Fields()
	_ = testcaseFields
	// testcaseDescMinScore is the schema descriptor for min_score field.
	testcaseDescMinScore := testcaseFields[11].Descriptor()
	// testcase.DefaultMinScore holds the default value on creation for the min_score field.
	testcase.DefaultMinScore = testcaseDescMinScore.Default.(float64)
	// testcaseDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	testcaseDescTimeoutSeconds := testcaseFields[12].Descriptor()
	// testcase.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	testcase.DefaultTimeoutSeconds = testcaseDescTimeoutSeconds.Default.(int)
	// testcaseDescCreatedAt is the schema descriptor for created_at field.
	testcaseDescCreatedAt := testcaseFields[14].Descriptor()
	// testcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	testcase.DefaultCreatedAt = testcaseDescCreatedAt.Default.(func() time.Time)
	// testcaseDescUpdatedAt is the schema descriptor for updated_at field.
	testcaseDescUpdatedAt := testcaseFields[15].Descriptor()
	// testcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testcase.DefaultUpdatedAt = testcaseDescUpdatedAt.Default.(func() time.Time)
	// testcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testcase.UpdateDefaultUpdatedAt = testcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
}
