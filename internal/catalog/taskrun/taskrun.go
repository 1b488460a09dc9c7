// Package taskrun holds the unified task run DTOs. TaskRun is the one
// run concept shared by the runner, the web backend, and the library;
// GUI automation is one aspect of a task, tracked in child automation
// records.
package taskrun

import (
	"time"

	"github.com/qontinui/qontinui-schemas/internal/registry"
)

// TaskType determines the nature and behavior of a task run.
type TaskType string

const (
	TaskTypeTask       TaskType = "task"
	TaskTypeAutomation TaskType = "automation"
	TaskTypeScheduled  TaskType = "scheduled"
)

// TaskRunStatus is the task lifecycle: running -> (complete | failed | stopped).
type TaskRunStatus string

const (
	TaskRunStatusRunning  TaskRunStatus = "running"
	TaskRunStatusComplete TaskRunStatus = "complete"
	TaskRunStatusFailed   TaskRunStatus = "failed"
	TaskRunStatusStopped  TaskRunStatus = "stopped"
)

// AutomationStatus is the status of one automation execution within a
// task run.
type AutomationStatus string

const (
	AutomationStatusRunning   AutomationStatus = "running"
	AutomationStatusSuccess   AutomationStatus = "success"
	AutomationStatusFailed    AutomationStatus = "failed"
	AutomationStatusTimeout   AutomationStatus = "timeout"
	AutomationStatusCancelled AutomationStatus = "cancelled"
)

// TaskRunBase carries the fields shared by create and response schemas.
type TaskRunBase struct {
	TaskName           string   `json:"task_name" doc:"Human-readable name for this task"`
	Prompt             *string  `json:"prompt,omitempty" doc:"Task prompt (NULL for pure automation)"`
	TaskType           TaskType `json:"task_type,omitempty" doc:"Type of task: 'task', 'automation', or 'scheduled'"`
	AutoContinue       bool     `json:"auto_continue,omitempty" doc:"Whether to auto-continue on session completion"`
	MaxSessions        *int     `json:"max_sessions,omitempty" doc:"Maximum number of AI sessions allowed"`
	ExecutionStepsJSON *string  `json:"execution_steps_json,omitempty" doc:"JSON-encoded execution steps to run before each AI session"`
	LogSourcesJSON     *string  `json:"log_sources_json,omitempty" doc:"JSON-encoded log sources to capture during execution"`
	ConfigID           *string  `json:"config_id,omitempty" doc:"Config ID for automation-enabled tasks"`
	WorkflowName       *string  `json:"workflow_name,omitempty" doc:"Workflow name being executed"`
}

// TaskRunCreate is the request for starting any type of task.
type TaskRunCreate struct {
	TaskRunBase
}

// TaskRunResponse carries the essential fields for task run lists.
type TaskRunResponse struct {
	ID            string        `json:"id" doc:"Unique task run identifier"`
	TaskName      string        `json:"task_name" doc:"Task name"`
	TaskType      TaskType      `json:"task_type" doc:"Type of task"`
	Status        TaskRunStatus `json:"status" doc:"Current status"`
	SessionsCount int           `json:"sessions_count,omitempty" doc:"Number of AI sessions run"`
	MaxSessions   *int          `json:"max_sessions,omitempty" doc:"Maximum sessions allowed"`
	AutoContinue  bool          `json:"auto_continue,omitempty" doc:"Auto-continue enabled"`
	ConfigID      *string       `json:"config_id,omitempty" doc:"Config ID"`
	WorkflowName  *string       `json:"workflow_name,omitempty" doc:"Workflow name"`
	CreatedAt     time.Time     `json:"created_at" doc:"When the task was created (UTC)"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty" doc:"When the task completed (UTC)"`
}

// TaskRunDetail adds full output, summary, and metadata to the list
// response shape.
type TaskRunDetail struct {
	TaskRunResponse
	Prompt             *string `json:"prompt,omitempty" doc:"Task prompt"`
	OutputLog          string  `json:"output_log,omitempty" doc:"Full task output log"`
	ErrorMessage       *string `json:"error_message,omitempty" doc:"Error message if failed"`
	ExecutionStepsJSON *string `json:"execution_steps_json,omitempty" doc:"Execution steps JSON"`
	LogSourcesJSON     *string `json:"log_sources_json,omitempty" doc:"Log sources JSON"`

	// The runner still expects the historical ai_summary wire name.
	Summary            *string    `json:"summary,omitempty" alias:"ai_summary" doc:"AI-generated paragraph summary of the task run"`
	GoalAchieved       *bool      `json:"goal_achieved,omitempty" doc:"Whether the stated goal was achieved"`
	RemainingWork      *string    `json:"remaining_work,omitempty" doc:"What remains to be done if goal not achieved"`
	SummaryGeneratedAt *time.Time `json:"summary_generated_at,omitempty" doc:"When the summary was generated"`

	UpdatedAt time.Time `json:"updated_at" doc:"Last update time (UTC)"`
}

// TaskRunUpdate is the request for updating a task run.
type TaskRunUpdate struct {
	Status        *TaskRunStatus `json:"status,omitempty" doc:"New status"`
	OutputLog     *string        `json:"output_log,omitempty" doc:"Output to append"`
	ErrorMessage  *string        `json:"error_message,omitempty" doc:"Error message"`
	SessionsCount *int           `json:"sessions_count,omitempty" doc:"Update session count"`
	Summary       *string        `json:"summary,omitempty" doc:"AI summary"`
	GoalAchieved  *bool          `json:"goal_achieved,omitempty" doc:"Goal achieved flag"`
	RemainingWork *string        `json:"remaining_work,omitempty" doc:"Remaining work description"`
}

// TaskRunComplete is sent when task execution finishes, success or
// failure.
type TaskRunComplete struct {
	Status        TaskRunStatus `json:"status" doc:"Final status (complete, failed, stopped)"`
	ErrorMessage  *string       `json:"error_message,omitempty" doc:"Error message if failed"`
	Summary       *string       `json:"summary,omitempty" doc:"Optional execution summary"`
	GoalAchieved  *bool         `json:"goal_achieved,omitempty" doc:"Whether goal was achieved"`
	RemainingWork *string       `json:"remaining_work,omitempty" doc:"What remains if goal not achieved"`
}

// TaskRunReopen continues a finished task that did not achieve its
// goal.
type TaskRunReopen struct {
	AdditionalSessions int `json:"additional_sessions" doc:"Number of additional sessions to add"`
}

// TaskRunListResponse is the paginated task run list.
type TaskRunListResponse struct {
	Runs    []TaskRunResponse `json:"runs" doc:"List of task runs"`
	Total   int               `json:"total" doc:"Total number of runs"`
	Limit   int               `json:"limit" doc:"Items per page"`
	Offset  int               `json:"offset" doc:"Items skipped"`
	HasMore bool              `json:"has_more" doc:"Whether more items exist"`
}

// TaskRunAutomationBase carries the shared fields of an automation
// execution within a task run.
type TaskRunAutomationBase struct {
	TaskRunID       string  `json:"task_run_id" doc:"Parent task run ID"`
	WorkflowName    *string `json:"workflow_name,omitempty" doc:"Workflow being executed"`
	IterationNumber int     `json:"iteration_number,omitempty" doc:"Iteration number within the task"`
}

// TaskRunAutomationCreate is the request for creating an automation
// record.
type TaskRunAutomationCreate struct {
	TaskRunAutomationBase
}

// TaskRunAutomationResponse is one automation execution.
type TaskRunAutomationResponse struct {
	ID               string           `json:"id" doc:"Unique automation record ID"`
	TaskRunID        string           `json:"task_run_id" doc:"Parent task run ID"`
	WorkflowName     *string          `json:"workflow_name,omitempty" doc:"Workflow name"`
	AutomationStatus AutomationStatus `json:"automation_status" doc:"Automation status"`
	IterationNumber  int              `json:"iteration_number,omitempty" doc:"Iteration number"`
	StartedAt        time.Time        `json:"started_at" doc:"When automation started (UTC)"`
	EndedAt          *time.Time       `json:"ended_at,omitempty" doc:"When automation ended (UTC)"`
	DurationMs       *int             `json:"duration_ms,omitempty" doc:"Duration in milliseconds"`
}

// TaskRunAutomationDetail adds the run metrics, stored as JSON and
// decoded on read.
type TaskRunAutomationDetail struct {
	TaskRunAutomationResponse
	Success      *bool   `json:"success,omitempty" doc:"Whether automation succeeded"`
	ErrorType    *string `json:"error_type,omitempty" doc:"Type of error if failed"`
	ErrorMessage *string `json:"error_message,omitempty" doc:"Error message if failed"`

	ActionsSummary      map[string]any   `json:"actions_summary,omitempty" doc:"Summary of actions executed"`
	StatesVisited       []string         `json:"states_visited,omitempty" doc:"States visited"`
	TransitionsExecuted []map[string]any `json:"transitions_executed,omitempty" doc:"Transitions executed"`
	TemplateMatches     []map[string]any `json:"template_matches,omitempty" doc:"Template matching results"`
	Anomalies           []map[string]any `json:"anomalies,omitempty" doc:"Anomalies detected"`
}

// TaskRunAutomationComplete is the request for completing an
// automation execution.
type TaskRunAutomationComplete struct {
	AutomationStatus    AutomationStatus `json:"automation_status" doc:"Final status"`
	Success             bool             `json:"success" doc:"Whether automation succeeded"`
	ErrorType           *string          `json:"error_type,omitempty" doc:"Error type if failed"`
	ErrorMessage        *string          `json:"error_message,omitempty" doc:"Error message if failed"`
	ActionsSummary      map[string]any   `json:"actions_summary,omitempty" doc:"Actions summary"`
	StatesVisited       []string         `json:"states_visited,omitempty" doc:"States visited"`
	TransitionsExecuted []map[string]any `json:"transitions_executed,omitempty" doc:"Transitions executed"`
	TemplateMatches     []map[string]any `json:"template_matches,omitempty" doc:"Template matches"`
	Anomalies           []map[string]any `json:"anomalies,omitempty" doc:"Anomalies"`
}

// TaskRunAutomationListResponse lists automation executions within a
// task run.
type TaskRunAutomationListResponse struct {
	Automations []TaskRunAutomationResponse `json:"automations" doc:"List of automation executions"`
	Total       int                         `json:"total" doc:"Total count"`
}

// TaskRunSyncPayload combines task run data with automation records
// and findings for the unified sync to qontinui-web.
type TaskRunSyncPayload struct {
	TaskRun     TaskRunDetail             `json:"task_run" doc:"Task run details"`
	Automations []TaskRunAutomationDetail `json:"automations,omitempty" doc:"Automation execution records"`
	Findings    []map[string]any          `json:"findings,omitempty" doc:"Code/automation findings"`
	Discoveries []map[string]any          `json:"discoveries,omitempty" doc:"Discoveries from automation"`
}

// Batch lists the domain's declarations in emission order, enums
// first.
func Batch() *registry.Batch {
	return registry.NewBatch("task_run",
		registry.EnumDecl("TaskType",
			registry.Member("TASK", "task"),
			registry.Member("AUTOMATION", "automation"),
			registry.Member("SCHEDULED", "scheduled"),
		),
		registry.EnumDecl("TaskRunStatus",
			registry.Member("RUNNING", "running"),
			registry.Member("COMPLETE", "complete"),
			registry.Member("FAILED", "failed"),
			registry.Member("STOPPED", "stopped"),
		),
		registry.EnumDecl("AutomationStatus",
			registry.Member("RUNNING", "running"),
			registry.Member("SUCCESS", "success"),
			registry.Member("FAILED", "failed"),
			registry.Member("TIMEOUT", "timeout"),
			registry.Member("CANCELLED", "cancelled"),
		),
		registry.ModelDecl(TaskRunBase{}),
		registry.ModelDecl(TaskRunCreate{}),
		registry.ModelDecl(TaskRunResponse{}),
		registry.ModelDecl(TaskRunDetail{}),
		registry.ModelDecl(TaskRunUpdate{}),
		registry.ModelDecl(TaskRunComplete{}),
		registry.ModelDecl(TaskRunReopen{}),
		registry.ModelDecl(TaskRunListResponse{}),
		registry.ModelDecl(TaskRunAutomationBase{}),
		registry.ModelDecl(TaskRunAutomationCreate{}),
		registry.ModelDecl(TaskRunAutomationResponse{}),
		registry.ModelDecl(TaskRunAutomationDetail{}),
		registry.ModelDecl(TaskRunAutomationComplete{}),
		registry.ModelDecl(TaskRunAutomationListResponse{}),
		registry.ModelDecl(TaskRunSyncPayload{}),
	)
}
