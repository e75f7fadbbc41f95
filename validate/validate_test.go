package validate_test

import (
	"testing"

	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/roster"
	"github.com/classplan/engine/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func student(name string, friends ...string) roster.Student {
	return roster.Student{
		Name: name, Gender: roster.Male, Academic: roster.High, Behavior: roster.Medium,
		Friends: friends,
	}
}

func TestValidate_EmptyRoster(t *testing.T) {
	_, err := validate.Validate(zap.NewNop(), nil, 2, 2)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeEmptyStudentData, err.Code)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	students := []roster.Student{{Name: "A", Friends: []string{"B"}}, student("B", "A")}
	_, err := validate.Validate(zap.NewNop(), students, 1, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeMissingRequiredFields, err.Code)
}

func TestValidate_DuplicateNames(t *testing.T) {
	students := []roster.Student{student("A", "B"), student("A", "B")}
	_, err := validate.Validate(zap.NewNop(), students, 1, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeDuplicateStudentNames, err.Code)
	assert.Equal(t, []string{"A"}, err.Params["duplicates"])
}

func TestValidate_InvalidClassCount(t *testing.T) {
	students := []roster.Student{student("A", "B"), student("B", "A")}
	_, err := validate.Validate(zap.NewNop(), students, 0, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeInvalidClassCount, err.Code)
}

func TestValidate_TooManyClasses(t *testing.T) {
	students := []roster.Student{student("A", "B"), student("B", "A")}
	_, err := validate.Validate(zap.NewNop(), students, 3, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeTooManyClasses, err.Code)
}

func TestValidate_ClassSizeTooSmall(t *testing.T) {
	students := []roster.Student{
		student("A", "B"), student("B", "A"), student("C", "D"), student("D", "C"),
	}
	_, err := validate.Validate(zap.NewNop(), students, 2, 3)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeClassSizeTooSmall, err.Code)
}

func TestValidate_StudentNoFriends(t *testing.T) {
	students := []roster.Student{student("A"), student("B", "A")}
	_, err := validate.Validate(zap.NewNop(), students, 1, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeStudentNoFriends, err.Code)
}

func TestValidate_UnknownFriend(t *testing.T) {
	students := []roster.Student{student("A", "Ghost"), student("B", "A")}
	_, err := validate.Validate(zap.NewNop(), students, 1, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeUnknownFriend, err.Code)
}

func TestValidate_IsolatedAfterSelfReferenceRemoval(t *testing.T) {
	// A's only "friend" is itself: passes check 5 (lists one name) but
	// ends up isolated once the self-reference is normalized away.
	students := []roster.Student{student("A", "A"), student("B", "B")}
	_, err := validate.Validate(zap.NewNop(), students, 1, 1)
	require.NotNil(t, err)
	assert.Equal(t, engineerr.CodeIsolatedStudents, err.Code)
}

func TestValidate_Success(t *testing.T) {
	students := []roster.Student{student("A", "B"), student("B", "A")}
	r, err := validate.Validate(zap.NewNop(), students, 1, 1)
	require.Nil(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 2, r.Size())
}
