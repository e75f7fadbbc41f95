package engineerr_test

import (
	"testing"

	"github.com/classplan/engine/engineerr"
	"github.com/stretchr/testify/assert"
)

func TestError_ImplementsErrorInterface(t *testing.T) {
	var err error = engineerr.EmptyStudentData(0)
	assert.Contains(t, err.Error(), engineerr.CodeEmptyStudentData)
}

func TestDuplicateStudentNames_ParamsRoundTrip(t *testing.T) {
	e := engineerr.DuplicateStudentNames([]string{"Alice"})
	assert.Equal(t, engineerr.CodeDuplicateStudentNames, e.Code)
	assert.Equal(t, []string{"Alice"}, e.Params["duplicates"])
}

func TestUnknownFriend_ParamsRoundTrip(t *testing.T) {
	e := engineerr.UnknownFriend("Bob", "Ghost")
	assert.Equal(t, "Bob", e.Params["studentName"])
	assert.Equal(t, "Ghost", e.Params["friendName"])
}

func TestInternalServerError_NeverNilParams(t *testing.T) {
	e := engineerr.InternalServerError("panic: stack signature")
	assert.NotNil(t, e.Params)
	assert.Equal(t, "panic: stack signature", e.Params["details"])
}
