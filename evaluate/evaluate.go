package evaluate

import (
	"math"
	"time"

	"github.com/classplan/engine/roster"
	"gonum.org/v1/gonum/stat"
)

// Assignment is a total function from student name to class index in
// [0, K). It is the shared currency between both solvers and the
// evaluator.
type Assignment map[string]int

// ViolationKind distinguishes the three hard-violation categories the
// quality score deducts a flat 20 points for, once each, regardless of
// instance count (spec.md §4.4).
type ViolationKind string

const (
	ViolationZeroFriend ViolationKind = "zero_friend"
	ViolationSeparation ViolationKind = "separation"
	ViolationCluster    ViolationKind = "cluster"
)

// HardViolation names one concrete instance of a hard-constraint breach.
type HardViolation struct {
	Kind    ViolationKind
	Student string // set for ViolationZeroFriend
	A, B    string // set for ViolationSeparation
	Cluster int    // set for ViolationCluster
}

// SoftMetrics holds the soft-objective measurements spec.md §4.4 names.
type SoftMetrics struct {
	FriendSatisfaction   float64 // mean over students of (same-class friends / total friends)
	GenderImbalance      float64 // sum of squared per-class deviations of female count
	AcademicImbalance    float64 // sum over HIGH/MEDIUM/LOW of squared per-class deviations
	BehaviorImbalance    float64 // same structure as AcademicImbalance
	ClusterViolations    int
	SeparationViolations int
	SizeImbalance        int // max_k size_k - min_k size_k
}

// EvaluationRecord is the quality record spec.md §3 defines. Evaluate
// populates every field except ExecutionTime, StrategyUsed,
// FallbackUsed, and FallbackReason, which the orchestrator sets.
type EvaluationRecord struct {
	Quality        int
	HardViolations []HardViolation
	SoftMetrics    SoftMetrics
	ExecutionTime  time.Duration
	StrategyUsed   string
	FallbackUsed   bool
	FallbackReason string
}

// Evaluate scores assignment against r under k classes. It never
// mutates r or assignment and never observes the wall clock.
func Evaluate(r *roster.Roster, assignment Assignment, k int) *EvaluationRecord {
	rec := &EvaluationRecord{}

	classOf := func(name string) (int, bool) {
		c, ok := assignment[name]

		return c, ok
	}

	sizes := make([]int, k)
	genderCounts := make([][2]int, k)   // [k][Male, Female]
	academicCounts := make([][3]int, k) // [k][High, Medium, Low]
	behaviorCounts := make([][3]int, k) // [k][High, Medium, Low]
	for _, name := range r.Names() {
		c, ok := classOf(name)
		if !ok {
			continue
		}
		sizes[c]++
		st, _ := r.Get(name)
		if st.Gender == roster.Female {
			genderCounts[c][1]++
		} else {
			genderCounts[c][0]++
		}
		bumpLevel(&academicCounts[c], st.Academic)
		bumpLevel(&behaviorCounts[c], st.Behavior)
	}

	var zeroFriendStudents []string
	var satisfactionSum float64
	satisfactionN := 0
	for _, name := range r.Names() {
		st, _ := r.Get(name)
		if len(st.Friends) == 0 {
			continue
		}
		c, ok := classOf(name)
		if !ok {
			continue
		}
		sameClassFriends := 0
		for _, f := range st.Friends {
			if fc, ok := classOf(f); ok && fc == c {
				sameClassFriends++
			}
		}
		if sameClassFriends == 0 {
			zeroFriendStudents = append(zeroFriendStudents, name)
		}
		satisfactionSum += float64(sameClassFriends) / float64(len(st.Friends))
		satisfactionN++
	}
	for _, name := range zeroFriendStudents {
		rec.HardViolations = append(rec.HardViolations, HardViolation{Kind: ViolationZeroFriend, Student: name})
	}
	if satisfactionN > 0 {
		rec.SoftMetrics.FriendSatisfaction = satisfactionSum / float64(satisfactionN)
	}

	for _, pair := range r.Separations() {
		ca, okA := classOf(pair.A)
		cb, okB := classOf(pair.B)
		if okA && okB && ca == cb {
			rec.HardViolations = append(rec.HardViolations, HardViolation{Kind: ViolationSeparation, A: pair.A, B: pair.B})
			rec.SoftMetrics.SeparationViolations++
		}
	}

	for _, clusterID := range r.NonSingletonClusters() {
		members := r.Clusters()[clusterID]
		classes := make(map[int]bool)
		for _, m := range members {
			if c, ok := classOf(m); ok {
				classes[c] = true
			}
		}
		if len(classes) > 1 {
			rec.HardViolations = append(rec.HardViolations, HardViolation{Kind: ViolationCluster, Cluster: clusterID})
			rec.SoftMetrics.ClusterViolations++
		}
	}

	rec.SoftMetrics.GenderImbalance = sumSquaredDeviations(column(genderCounts, 1)) // female counts
	rec.SoftMetrics.AcademicImbalance = sumSquaredDeviations(column3(academicCounts, 0)) +
		sumSquaredDeviations(column3(academicCounts, 1)) + sumSquaredDeviations(column3(academicCounts, 2))
	rec.SoftMetrics.BehaviorImbalance = sumSquaredDeviations(column3(behaviorCounts, 0)) +
		sumSquaredDeviations(column3(behaviorCounts, 1)) + sumSquaredDeviations(column3(behaviorCounts, 2))
	rec.SoftMetrics.SizeImbalance = maxMinSpread(sizes)

	rec.Quality = compositeQuality(rec)

	return rec
}

func bumpLevel(counts *[3]int, lvl roster.Level) {
	switch lvl {
	case roster.High:
		counts[0]++
	case roster.Medium:
		counts[1]++
	case roster.Low:
		counts[2]++
	}
}

func column(counts [][2]int, idx int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c[idx])
	}

	return out
}

func column3(counts [][3]int, idx int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c[idx])
	}

	return out
}

// sumSquaredDeviations returns Σ(x_i - mean(x))^2 via gonum/stat's
// population-variance helper: PopMeanVariance's variance is the mean of
// squared deviations (divisor n), so multiplying back by n recovers the
// sum spec.md's objective and evaluator both want.
func sumSquaredDeviations(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(xs, nil)

	return variance * float64(len(xs))
}

func maxMinSpread(sizes []int) int {
	if len(sizes) == 0 {
		return 0
	}
	min, max := sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	return max - min
}

// compositeQuality implements spec.md §4.4's scoring rule: start at 100,
// subtract 20 once per hard-violation category present, then subtract
// normalized soft penalties, clamped to [0,100].
func compositeQuality(rec *EvaluationRecord) int {
	score := 100.0

	var hasZeroFriend, hasSeparation, hasCluster bool
	for _, v := range rec.HardViolations {
		switch v.Kind {
		case ViolationZeroFriend:
			hasZeroFriend = true
		case ViolationSeparation:
			hasSeparation = true
		case ViolationCluster:
			hasCluster = true
		}
	}
	if hasZeroFriend {
		score -= 20
	}
	if hasSeparation {
		score -= 20
	}
	if hasCluster {
		score -= 20
	}

	// Soft penalty: unsatisfied friendship share, scaled to a 0-20 band.
	score -= (1 - rec.SoftMetrics.FriendSatisfaction) * 20
	// Balance penalties: small, bounded nudges — the imbalance metrics
	// are unbounded sums of squares, so they are damped by a square root
	// rather than subtracted raw, to keep a single outlier class from
	// swamping the whole score.
	score -= dampedPenalty(rec.SoftMetrics.GenderImbalance)
	score -= dampedPenalty(rec.SoftMetrics.AcademicImbalance)
	score -= dampedPenalty(rec.SoftMetrics.BehaviorImbalance)
	score -= float64(rec.SoftMetrics.SizeImbalance)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return int(score + 0.5)
}

// dampedPenalty bounds an unbounded sum-of-squares imbalance metric to a
// small, comparable deduction: sqrt(x) rather than x itself.
func dampedPenalty(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return math.Sqrt(x)
}
