package progress

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

// Stats is the aggregate severity snapshot derived from the raw records.
// It is produced fresh on every call; the counters are computed
// independently of the level.
type Stats struct {
	Level              int    `json:"level"`
	Label              string `json:"label"`
	Emoji              string `json:"emoji"`
	MissedLectures     int    `json:"missed_lectures"`
	MissedTAs          int    `json:"missed_tas"`
	OverdueAssignments int    `json:"overdue_assignments"`
	PendingAssignments int    `json:"pending_assignments"`
}

// LabelPicker selects an index in [0, n) for the severity label of a given
// level. RandomLabels is the default; RotatingLabels yields stable output
// for identical input.
type LabelPicker func(level, n int) int

// RandomLabels draws uniformly from the band's candidate labels.
func RandomLabels(_, n int) int { return rand.IntN(n) }

// RotatingLabels derives the label index from the level itself.
func RotatingLabels(level, n int) int { return level % n }

type band struct {
	max    int
	emoji  string
	labels []string
}

var bands = []band{
	{25, "🧊", []string{
		"Chill mode: almost suspiciously organized.",
		"Unbelievable. You're actually fine.",
		"A rare sight: academic stability.",
	}},
	{50, "☕", []string{
		"Mild anxiety recommended.",
		"Comfortably doomed, but salvageable.",
		"Getting warm. Don't touch the stove.",
	}},
	{75, "🔥", []string{
		"Getting crispy. You still can recover.",
		"Running hot. Hydrate and panic efficiently.",
		"Hope is not a strategy, but it's all we have.",
	}},
	{100, "🍳", []string{
		"Fully roasted. May the odds be in your favor.",
		"Rest in equations.",
		"It's not procrastination if you never do it.",
	}},
}

func bandFor(level int) band {
	for _, b := range bands {
		if level <= b.max {
			return b
		}
	}
	return bands[len(bands)-1]
}

// overdueCrisisThreshold is the overdue-assignment count beyond which the
// level is floored at 75 no matter what the weighted blend says.
const overdueCrisisThreshold = 2

// ComputeStats blends the lecture/TA backlog up to currentWeek with the
// homework pending ratio into a 0-100 level and bucketizes it into a band.
// Weeks beyond currentWeek are not counted against the student. Empty
// collections are valid and produce level 0.
func ComputeStats(courses []models.Course, assignments []models.Assignment, currentWeek int, now time.Time, pick LabelPicker) Stats {
	if pick == nil {
		pick = RandomLabels
	}

	var expected, missed, missedLectures, missedTAs int
	for _, course := range courses {
		for _, week := range course.Weeks {
			if week.WeekNum > currentWeek {
				continue
			}
			expected += 2
			if !week.LectureDone {
				missed++
				missedLectures++
			}
			if !week.TADone {
				missed++
				missedTAs++
			}
		}
	}

	var pending, overdue int
	for _, assignment := range assignments {
		if assignment.Complete {
			continue
		}
		pending++
		if daysUntil(time.Time(assignment.DueDate), now) < 0 {
			overdue++
		}
	}

	var backlogRatio, hwRatio float64
	if expected > 0 {
		backlogRatio = float64(missed) / float64(expected)
	}
	if len(assignments) > 0 {
		hwRatio = float64(pending) / float64(len(assignments))
	}

	// The three-way branch keeps an empty denominator from dragging the
	// blend toward zero.
	var raw float64
	switch {
	case len(assignments) == 0 && expected == 0:
		raw = 0
	case len(assignments) == 0:
		raw = backlogRatio
	case expected == 0:
		raw = hwRatio
	default:
		raw = 0.5*backlogRatio + 0.5*hwRatio
	}

	level := int(math.Round(raw * 100))
	if level > 100 {
		level = 100
	}
	if level < 0 {
		level = 0
	}
	if overdue > overdueCrisisThreshold && level < 75 {
		level = 75
	}

	b := bandFor(level)

	return Stats{
		Level:              level,
		Label:              b.labels[pick(level, len(b.labels))],
		Emoji:              b.emoji,
		MissedLectures:     missedLectures,
		MissedTAs:          missedTAs,
		OverdueAssignments: overdue,
		PendingAssignments: pending,
	}
}
