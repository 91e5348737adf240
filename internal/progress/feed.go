package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

// Feed item kinds.
const (
	KindMissedLecture = "missed-lecture"
	KindMissedTA      = "missed-ta"
	KindAssignment    = "assignment"
)

const (
	// FeedLimit caps how many items BuildFeed returns.
	FeedLimit = 5

	// Lectures outrank TA sessions when equally stale; only the relative
	// ordering of the two bases is meaningful.
	lectureBaseUrgency = 5
	taBaseUrgency      = 4

	// Overdue assignments rank in a flat top tier above every non-overdue
	// item, regardless of how long they have been overdue.
	overdueUrgency = 20
	dueSoonUrgency = 15

	// Assignments further out than this many days stay off the feed.
	dueHorizonDays = 5

	placeholderTitle = "HW"
	placeholderColor = "#ccc"
)

// FeedItem is one ranked remediation suggestion. Its ID is derived
// deterministically from the source record, so identical input always yields
// identical identities.
type FeedItem struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Urgency  int    `json:"urgency"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// BuildFeed scans courses and assignments for outstanding work and returns
// the top FeedLimit items by urgency, plus the total candidate count so the
// caller can surface an "N more" indicator. Candidates generated from
// courses come before assignment candidates, in input order, which is also
// the tie-break order for equal urgency.
func BuildFeed(courses []models.Course, assignments []models.Assignment, currentWeek int, now time.Time) ([]FeedItem, int) {
	var items []FeedItem

	for _, course := range courses {
		for _, week := range course.Weeks {
			if week.WeekNum > currentWeek {
				continue
			}
			staleness := currentWeek - week.WeekNum
			if !week.LectureDone {
				items = append(items, FeedItem{
					ID:       fmt.Sprintf("%s-w%d-lec", course.ID, week.WeekNum),
					Kind:     KindMissedLecture,
					Title:    fmt.Sprintf("%s Lecture %d", course.Name, week.WeekNum),
					Subtitle: fmt.Sprintf("Missing from Week %d", week.WeekNum),
					Urgency:  lectureBaseUrgency + staleness,
					Color:    course.Color,
					Icon:     "video",
				})
			}
			if !week.TADone {
				items = append(items, FeedItem{
					ID:       fmt.Sprintf("%s-w%d-ta", course.ID, week.WeekNum),
					Kind:     KindMissedTA,
					Title:    fmt.Sprintf("%s TA %d", course.Name, week.WeekNum),
					Subtitle: fmt.Sprintf("Missing from Week %d", week.WeekNum),
					Urgency:  taBaseUrgency + staleness,
					Color:    course.Color,
					Icon:     "book-open",
				})
			}
		}
	}

	coursesByID := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		coursesByID[course.ID] = course
	}

	for _, assignment := range assignments {
		if assignment.Complete {
			continue
		}

		days := daysUntil(time.Time(assignment.DueDate), now)
		if days > dueHorizonDays {
			continue
		}

		var urgency int
		var subtitle string
		switch {
		case days < 0:
			urgency = overdueUrgency
			subtitle = fmt.Sprintf("Overdue by %d days", -days)
		case days <= 2:
			urgency = dueSoonUrgency
			subtitle = fmt.Sprintf("Due in %d days", days)
		default:
			urgency = 10 - days
			subtitle = fmt.Sprintf("Due in %d days", days)
		}

		title := placeholderTitle
		color := placeholderColor
		if course, ok := coursesByID[assignment.CourseID]; ok {
			title = course.Name
			color = course.Color
		}

		items = append(items, FeedItem{
			ID:       assignment.ID,
			Kind:     KindAssignment,
			Title:    fmt.Sprintf("%s: %s", title, assignment.Title),
			Subtitle: subtitle,
			Urgency:  urgency,
			Color:    color,
			Icon:     "file-text",
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Urgency > items[j].Urgency
	})

	total := len(items)
	if total > FeedLimit {
		items = items[:FeedLimit]
	}

	return items, total
}
