package validate

import (
	"fmt"
	"sort"

	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/roster"
	"go.uber.org/zap"
)

// Validate runs the seven ordered checks from spec.md §4.1 against raw
// student records and a proposed class count, short-circuiting on the
// first failure. On success it returns a fully built *roster.Roster,
// ready for a solver — callers never rebuild the roster's indexes
// themselves.
func Validate(logger *zap.Logger, students []roster.Student, classesNumber, minClassSize int) (*roster.Roster, *engineerr.Error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := checkNonEmpty(logger, students); err != nil {
		return nil, err
	}
	if err := checkRequiredFields(logger, students); err != nil {
		return nil, err
	}
	if err := checkUniqueNames(logger, students); err != nil {
		return nil, err
	}
	if err := checkClassCount(logger, len(students), classesNumber, minClassSize); err != nil {
		return nil, err
	}
	if err := checkHasFriends(logger, students); err != nil {
		return nil, err
	}
	if err := checkKnownReferences(logger, students); err != nil {
		return nil, err
	}

	r := roster.New(students)
	if err := checkNoIsolated(logger, r); err != nil {
		return nil, err
	}

	logger.Debug("validate: all checks passed", zap.Int("studentCount", len(students)))

	return r, nil
}

func checkNonEmpty(logger *zap.Logger, students []roster.Student) *engineerr.Error {
	if len(students) == 0 {
		logger.Debug("validate: empty roster")

		return engineerr.EmptyStudentData(0)
	}
	logger.Debug("validate: non-empty roster ok", zap.Int("count", len(students)))

	return nil
}

func checkRequiredFields(logger *zap.Logger, students []roster.Student) *engineerr.Error {
	for i, st := range students {
		var missing []string
		if st.Name == "" {
			missing = append(missing, "name")
		}
		if st.Gender == "" {
			missing = append(missing, "gender")
		}
		if st.Academic == "" {
			missing = append(missing, "academic")
		}
		if st.Behavior == "" {
			missing = append(missing, "behavior")
		}
		if len(missing) > 0 {
			id := st.Name
			if id == "" {
				id = fmt.Sprintf("<index %d>", i)
			}
			logger.Debug("validate: missing required fields", zap.String("student", id), zap.Strings("fields", missing))

			return engineerr.MissingRequiredFields(id, missing)
		}
	}
	logger.Debug("validate: required fields ok")

	return nil
}

func checkUniqueNames(logger *zap.Logger, students []roster.Student) *engineerr.Error {
	counts := make(map[string]int, len(students))
	for _, st := range students {
		counts[st.Name]++
	}

	var duplicates []string
	for name, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, name)
		}
	}
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		logger.Debug("validate: duplicate names", zap.Strings("duplicates", duplicates))

		return engineerr.DuplicateStudentNames(duplicates)
	}
	logger.Debug("validate: unique names ok")

	return nil
}

func checkClassCount(logger *zap.Logger, rosterSize, classesNumber, minClassSize int) *engineerr.Error {
	if classesNumber <= 0 {
		logger.Debug("validate: non-positive class count", zap.Int("classesNumber", classesNumber))

		return engineerr.InvalidClassCount(classesNumber)
	}
	if classesNumber > rosterSize {
		logger.Debug("validate: too many classes", zap.Int("classesNumber", classesNumber), zap.Int("rosterSize", rosterSize))

		return engineerr.TooManyClasses(classesNumber, rosterSize)
	}
	if avg := rosterSize / classesNumber; avg < minClassSize {
		logger.Debug("validate: class size too small", zap.Int("actual", avg), zap.Int("minClassSize", minClassSize))

		return engineerr.ClassSizeTooSmall(minClassSize, avg)
	}
	logger.Debug("validate: class count ok", zap.Int("classesNumber", classesNumber))

	return nil
}

func checkHasFriends(logger *zap.Logger, students []roster.Student) *engineerr.Error {
	for _, st := range students {
		if len(st.Friends) == 0 {
			logger.Debug("validate: student has no friends", zap.String("student", st.Name))

			return engineerr.StudentNoFriends(st.Name)
		}
	}
	logger.Debug("validate: every student lists a friend")

	return nil
}

func checkKnownReferences(logger *zap.Logger, students []roster.Student) *engineerr.Error {
	names := make(map[string]struct{}, len(students))
	for _, st := range students {
		names[st.Name] = struct{}{}
	}

	for _, st := range students {
		for _, friend := range st.Friends {
			if friend == st.Name {
				continue // self-reference, normalized away later, not "unknown"
			}
			if _, ok := names[friend]; !ok {
				logger.Debug("validate: unknown friend reference", zap.String("student", st.Name), zap.String("friend", friend))

				return engineerr.UnknownFriend(st.Name, friend)
			}
		}
		if st.NotWith != "" && st.NotWith != st.Name {
			if _, ok := names[st.NotWith]; !ok {
				logger.Debug("validate: unknown not_with reference", zap.String("student", st.Name), zap.String("notWith", st.NotWith))

				return engineerr.UnknownFriend(st.Name, st.NotWith)
			}
		}
	}
	logger.Debug("validate: all references known")

	return nil
}

func checkNoIsolated(logger *zap.Logger, r *roster.Roster) *engineerr.Error {
	var isolated []string
	for _, name := range r.Names() {
		degree, err := r.Graph().Degree(name)
		if err != nil || degree == 0 {
			isolated = append(isolated, name)
		}
	}
	if len(isolated) > 0 {
		logger.Debug("validate: isolated students after normalization", zap.Strings("students", isolated))

		return engineerr.IsolatedStudents(isolated)
	}
	logger.Debug("validate: no isolated students")

	return nil
}
