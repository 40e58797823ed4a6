package reports

import (
	"sort"
	"time"

	"github.com/mmdatafocus/fleetops_backend/models"
)

type NextDueTask struct {
	TaskId     string    `json:"taskId"`
	Title      string    `json:"title"`
	VesselName string    `json:"assetName"`
	DueDate    time.Time `json:"dueDate"`
}

type MaintenanceStats struct {
	Total            int          `json:"total"`
	Open             int          `json:"open"`
	InProgress       int          `json:"inProgress"`
	Done             int          `json:"done"`
	HighPriorityOpen int          `json:"highPriorityOpen"`
	Overdue          int          `json:"overdue"`
	DueSoon          int          `json:"dueSoon"`
	NextDue          *NextDueTask `json:"nextDue,omitempty"`
}

// IsOverdue: a due date strictly before now on a task that is not DONE.
func IsOverdue(task models.MaintenanceTask, now time.Time) bool {
	return task.DueDate != nil &&
		task.Status != models.MaintenanceStatusDone &&
		task.DueDate.Before(now)
}

// IsDueSoon: not DONE and due inside [now, now+window].
func IsDueSoon(task models.MaintenanceTask, h Horizon) bool {
	if task.DueDate == nil || task.Status == models.MaintenanceStatusDone {
		return false
	}
	return !task.DueDate.Before(h.Now) && !task.DueDate.After(h.dueSoonLimit())
}

func MaintenanceStatsOf(tasks []models.MaintenanceTask, h Horizon) MaintenanceStats {
	stats := MaintenanceStats{Total: len(tasks)}
	var next *models.MaintenanceTask

	for i := range tasks {
		t := tasks[i]
		switch t.Status {
		case models.MaintenanceStatusOpen:
			stats.Open++
			if t.Priority == models.MaintenancePriorityHigh {
				stats.HighPriorityOpen++
			}
		case models.MaintenanceStatusInProgress:
			stats.InProgress++
		case models.MaintenanceStatusDone:
			stats.Done++
		}

		if IsOverdue(t, h.Now) {
			stats.Overdue++
		} else if IsDueSoon(t, h) {
			stats.DueSoon++
		}

		if t.DueDate != nil && t.Status != models.MaintenanceStatusDone {
			if next == nil || t.DueDate.Before(*next.DueDate) {
				next = &tasks[i]
			}
		}
	}

	if next != nil {
		stats.NextDue = &NextDueTask{
			TaskId:     next.ID,
			Title:      next.Title,
			VesselName: next.VesselName,
			DueDate:    *next.DueDate,
		}
	}
	return stats
}

// SortMaintenanceByUrgency returns a copy with every overdue task ahead of
// every other task. Inside each group tasks go by due date ascending, tasks
// without a due date last, ties in input order.
func SortMaintenanceByUrgency(tasks []models.MaintenanceTask, now time.Time) []models.MaintenanceTask {
	out := make([]models.MaintenanceTask, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := IsOverdue(out[i], now), IsOverdue(out[j], now)
		if oi != oj {
			return oi
		}
		return compareInstants(out[i].DueDate, out[j].DueDate) < 0
	})
	return out
}
