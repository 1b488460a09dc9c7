// Package testing holds the software-testing result DTOs used by the
// web backend, the generated frontend types, and the runner's test
// result submission. All timestamp fields are UTC and serialize as
// ISO 8601 strings with a Z suffix.
package testing

import (
	"time"

	"github.com/google/uuid"

	"github.com/qontinui/qontinui-schemas/internal/registry"
)

// TestRunStatus is the status of a test run.
type TestRunStatus string

const (
	TestRunStatusRunning   TestRunStatus = "running"
	TestRunStatusCompleted TestRunStatus = "completed"
	TestRunStatusFailed    TestRunStatus = "failed"
	TestRunStatusTimeout   TestRunStatus = "timeout"
	TestRunStatusCancelled TestRunStatus = "cancelled"
)

// TransitionStatus is the status of a transition execution.
type TransitionStatus string

const (
	TransitionStatusSuccess TransitionStatus = "success"
	TransitionStatusFailed  TransitionStatus = "failed"
	TransitionStatusTimeout TransitionStatus = "timeout"
	TransitionStatusSkipped TransitionStatus = "skipped"
	TransitionStatusError   TransitionStatus = "error"
)

// DeficiencySeverity is the severity level of a deficiency.
type DeficiencySeverity string

const (
	DeficiencySeverityCritical DeficiencySeverity = "critical"
	DeficiencySeverityHigh     DeficiencySeverity = "high"
	DeficiencySeverityMedium   DeficiencySeverity = "medium"
	DeficiencySeverityLow      DeficiencySeverity = "low"
	DeficiencySeverityInfo     DeficiencySeverity = "informational"
)

// DeficiencyStatus is the workflow status of a deficiency.
type DeficiencyStatus string

const (
	DeficiencyStatusNew        DeficiencyStatus = "new"
	DeficiencyStatusOpen       DeficiencyStatus = "open"
	DeficiencyStatusInProgress DeficiencyStatus = "in_progress"
	DeficiencyStatusResolved   DeficiencyStatus = "resolved"
	DeficiencyStatusClosed     DeficiencyStatus = "closed"
	DeficiencyStatusWontFix    DeficiencyStatus = "wont_fix"
)

// DeficiencyType classifies a deficiency.
type DeficiencyType string

const (
	DeficiencyTypeFunctional    DeficiencyType = "functional_bug"
	DeficiencyTypeVisual        DeficiencyType = "ui_issue"
	DeficiencyTypePerformance   DeficiencyType = "performance"
	DeficiencyTypeCrash         DeficiencyType = "crash"
	DeficiencyTypeSecurity      DeficiencyType = "security"
	DeficiencyTypeAccessibility DeficiencyType = "accessibility"
	DeficiencyTypeData          DeficiencyType = "data"
	DeficiencyTypeOther         DeficiencyType = "other"
)

// ScreenshotType classifies a screenshot.
type ScreenshotType string

const (
	ScreenshotTypeError             ScreenshotType = "error"
	ScreenshotTypeSuccess           ScreenshotType = "success"
	ScreenshotTypeManual            ScreenshotType = "manual"
	ScreenshotTypePeriodic          ScreenshotType = "periodic"
	ScreenshotTypeStateVerification ScreenshotType = "state_verification"
	ScreenshotTypeActionResult      ScreenshotType = "action_result"
	ScreenshotTypeBeforeAction      ScreenshotType = "before_action"
	ScreenshotTypeAfterAction       ScreenshotType = "after_action"
)

// Pagination is the shared pagination metadata block.
type Pagination struct {
	Total   int  `json:"total" doc:"Total number of items"`
	Limit   int  `json:"limit" doc:"Items per page"`
	Offset  int  `json:"offset" doc:"Number of items skipped"`
	HasMore bool `json:"has_more" doc:"Whether more items exist"`
}

// PaginatedResponse is the generic paginated envelope.
type PaginatedResponse struct {
	Items      []any      `json:"items" doc:"List of items"`
	Pagination Pagination `json:"pagination" doc:"Pagination metadata"`
}

// TestRunCreate is the request for creating a new test run.
type TestRunCreate struct {
	ProjectID             uuid.UUID      `json:"project_id" doc:"Project ID"`
	RunName               string         `json:"run_name" doc:"Name of the test run"`
	Description           *string        `json:"description,omitempty" doc:"Optional description"`
	RunnerMetadata        map[string]any `json:"runner_metadata" doc:"Metadata about the runner environment"`
	WorkflowMetadata      map[string]any `json:"workflow_metadata" doc:"Metadata about the workflow being tested"`
	ConfigurationSnapshot map[string]any `json:"configuration_snapshot" doc:"Snapshot of the test configuration"`
}

// TestRunResponse is the test run creation and retrieval shape.
type TestRunResponse struct {
	RunID           uuid.UUID      `json:"run_id" doc:"Unique test run identifier"`
	ProjectID       uuid.UUID      `json:"project_id" doc:"Project ID"`
	RunName         string         `json:"run_name" doc:"Name of the test run"`
	Status          TestRunStatus  `json:"status" doc:"Test run status"`
	StartedAt       time.Time      `json:"started_at" doc:"Test run start time (UTC)"`
	EndedAt         *time.Time     `json:"ended_at,omitempty" doc:"Test run end time (UTC)"`
	DurationSeconds *int           `json:"duration_seconds,omitempty" doc:"Duration in seconds"`
	RunnerMetadata  map[string]any `json:"runner_metadata" doc:"Runner metadata"`
	CreatedAt       time.Time      `json:"created_at" doc:"Record creation time (UTC)"`
}

// TestRunDetail is the full test run record.
type TestRunDetail struct {
	TestRunResponse
	Description           *string          `json:"description,omitempty" doc:"Test run description"`
	WorkflowMetadata      map[string]any   `json:"workflow_metadata" doc:"Workflow metadata"`
	ConfigurationSnapshot map[string]any   `json:"configuration_snapshot" doc:"Configuration snapshot"`
	FinalMetrics          map[string]any   `json:"final_metrics,omitempty" doc:"Final metrics"`
	CoverageData          map[string]any   `json:"coverage_data,omitempty" doc:"Coverage data"`
	UpdatedAt             *time.Time       `json:"updated_at,omitempty" doc:"Last update time (UTC)"`
	CreatedBy             map[string]any   `json:"created_by,omitempty" doc:"User who created"`
	Transitions           []map[string]any `json:"transitions,omitempty" doc:"Transitions"`
	Deficiencies          []map[string]any `json:"deficiencies,omitempty" doc:"Deficiencies"`
	Screenshots           []map[string]any `json:"screenshots,omitempty" doc:"Screenshots"`
}

// TestRunListResponse is the paginated test run list.
type TestRunListResponse struct {
	Runs       []TestRunResponse `json:"runs" doc:"List of test runs"`
	Pagination Pagination        `json:"pagination" doc:"Pagination metadata"`
}

// TestRunComplete finishes a test run. Status accepts completed,
// failed, timeout, aborted, or crashed.
type TestRunComplete struct {
	Status       string         `json:"status" doc:"Final status"`
	EndedAt      time.Time      `json:"ended_at" doc:"End time (UTC)"`
	FinalMetrics map[string]any `json:"final_metrics" doc:"Final test metrics"`
	Summary      *string        `json:"summary,omitempty" doc:"Optional summary text"`
}

// TestRunCompleteResponse acknowledges test run completion.
type TestRunCompleteResponse struct {
	RunID           uuid.UUID      `json:"run_id" doc:"Test run ID"`
	Status          TestRunStatus  `json:"status" doc:"Final status"`
	StartedAt       time.Time      `json:"started_at" doc:"Start time (UTC)"`
	EndedAt         time.Time      `json:"ended_at" doc:"End time (UTC)"`
	DurationSeconds int            `json:"duration_seconds" doc:"Duration in seconds"`
	FinalMetrics    map[string]any `json:"final_metrics" doc:"Final metrics"`
}

// TransitionCreate is a single transition report.
type TransitionCreate struct {
	SequenceNumber int              `json:"sequence_number" doc:"Order within test run"`
	FromState      string           `json:"from_state" doc:"Source state"`
	ToState        string           `json:"to_state" doc:"Destination state"`
	TransitionName string           `json:"transition_name" doc:"Transition name"`
	Status         TransitionStatus `json:"status" doc:"Transition status"`
	StartedAt      time.Time        `json:"started_at" doc:"Transition start time (UTC)"`
	CompletedAt    time.Time        `json:"completed_at" doc:"Transition completion time (UTC)"`
	DurationMs     int              `json:"duration_ms" doc:"Duration in milliseconds"`
	ErrorMessage   *string          `json:"error_message,omitempty" doc:"Error message if failed"`
	ErrorType      *string          `json:"error_type,omitempty" doc:"Error type if failed"`
	ScreenshotID   *uuid.UUID       `json:"screenshot_id,omitempty" doc:"Associated screenshot ID"`
	Metadata       map[string]any   `json:"metadata,omitempty" doc:"Additional transition metadata"`
}

// TransitionBatchCreate reports up to 50 transitions at once.
type TransitionBatchCreate struct {
	Transitions []TransitionCreate `json:"transitions" doc:"List of transitions"`
}

// TransitionResponse is a single recorded transition.
type TransitionResponse struct {
	TransitionID   uuid.UUID        `json:"transition_id" doc:"Transition ID"`
	SequenceNumber int              `json:"sequence_number" doc:"Sequence number"`
	FromState      string           `json:"from_state" doc:"Source state"`
	ToState        string           `json:"to_state" doc:"Destination state"`
	TransitionName string           `json:"transition_name" doc:"Transition name"`
	Status         TransitionStatus `json:"status" doc:"Transition status"`
	DurationMs     int              `json:"duration_ms" doc:"Duration in milliseconds"`
	StartedAt      time.Time        `json:"started_at" doc:"Start time (UTC)"`
	CompletedAt    time.Time        `json:"completed_at" doc:"Completion time (UTC)"`
	ErrorMessage   *string          `json:"error_message,omitempty" doc:"Error message"`
	ErrorType      *string          `json:"error_type,omitempty" doc:"Error type"`
}

// TransitionBatchResponse acknowledges batch transition creation.
type TransitionBatchResponse struct {
	RunID               uuid.UUID      `json:"run_id" doc:"Test run ID"`
	TransitionsRecorded int            `json:"transitions_recorded" doc:"Number recorded"`
	TransitionIDs       []uuid.UUID    `json:"transition_ids" doc:"IDs of created transitions"`
	CoverageUpdated     map[string]any `json:"coverage_updated" doc:"Updated coverage"`
}

// DeficiencyCreate is a single deficiency report.
type DeficiencyCreate struct {
	Title                    string             `json:"title" doc:"Deficiency title"`
	Description              string             `json:"description" doc:"Detailed description"`
	Severity                 DeficiencySeverity `json:"severity" doc:"Severity level"`
	DeficiencyType           DeficiencyType     `json:"deficiency_type" doc:"Type of deficiency"`
	TransitionSequenceNumber *int               `json:"transition_sequence_number,omitempty" doc:"Related transition sequence number"`
	State                    *string            `json:"state,omitempty" doc:"State where occurred"`
	ScreenshotIDs            []uuid.UUID        `json:"screenshot_ids,omitempty" doc:"Associated screenshot IDs"`
	ReproductionSteps        []string           `json:"reproduction_steps,omitempty" doc:"Steps to reproduce"`
	Metadata                 map[string]any     `json:"metadata,omitempty" doc:"Additional metadata"`
}

// DeficiencyBatchCreate reports up to 20 deficiencies at once.
type DeficiencyBatchCreate struct {
	Deficiencies []DeficiencyCreate `json:"deficiencies" doc:"List of deficiencies"`
}

// DeficiencyResponse is a single recorded deficiency.
type DeficiencyResponse struct {
	DeficiencyID             uuid.UUID          `json:"deficiency_id" doc:"Deficiency ID"`
	RunID                    uuid.UUID          `json:"run_id" doc:"Test run ID"`
	Title                    string             `json:"title" doc:"Deficiency title"`
	Description              string             `json:"description" doc:"Deficiency description"`
	Severity                 DeficiencySeverity `json:"severity" doc:"Severity level"`
	Status                   DeficiencyStatus   `json:"status" doc:"Deficiency status"`
	DeficiencyType           DeficiencyType     `json:"deficiency_type" doc:"Deficiency type"`
	State                    *string            `json:"state,omitempty" doc:"State where occurred"`
	TransitionSequenceNumber *int               `json:"transition_sequence_number,omitempty" doc:"Related transition"`
	ScreenshotCount          *int               `json:"screenshot_count,omitempty" doc:"Number of screenshots"`
	CreatedAt                time.Time          `json:"created_at" doc:"Creation time (UTC)"`
	UpdatedAt                time.Time          `json:"updated_at" doc:"Last update time (UTC)"`
	RunInfo                  map[string]any     `json:"run_info,omitempty" doc:"Related run info"`
}

// DeficiencyDetail is the full deficiency record.
type DeficiencyDetail struct {
	DeficiencyResponse
	ReproductionSteps []string       `json:"reproduction_steps,omitempty" doc:"Reproduction steps"`
	Screenshots       []any          `json:"screenshots,omitempty" doc:"Associated screenshots"`
	Metadata          map[string]any `json:"metadata,omitempty" doc:"Additional metadata"`
	AssignedTo        map[string]any `json:"assigned_to,omitempty" doc:"Assigned user"`
	ResolutionNotes   *string        `json:"resolution_notes,omitempty" doc:"Resolution notes"`
	Comments          []any          `json:"comments,omitempty" doc:"Comments"`
}

// DeficiencyUpdate modifies a deficiency.
type DeficiencyUpdate struct {
	Status           *DeficiencyStatus   `json:"status,omitempty" doc:"New status"`
	Severity         *DeficiencySeverity `json:"severity,omitempty" doc:"New severity"`
	AssignedToUserID *uuid.UUID          `json:"assigned_to_user_id,omitempty" doc:"Assign to user"`
	ResolutionNotes  *string             `json:"resolution_notes,omitempty" doc:"Resolution notes"`
}

// DeficiencyListResponse is the paginated deficiency list.
type DeficiencyListResponse struct {
	Deficiencies []DeficiencyResponse `json:"deficiencies" doc:"List of deficiencies"`
	Pagination   Pagination           `json:"pagination" doc:"Pagination metadata"`
	Summary      map[string]any       `json:"summary" doc:"Summary statistics"`
}

// DeficiencyBatchResponse acknowledges batch deficiency creation.
type DeficiencyBatchResponse struct {
	RunID                uuid.UUID   `json:"run_id" doc:"Test run ID"`
	DeficienciesRecorded int         `json:"deficiencies_recorded" doc:"Number recorded"`
	DeficiencyIDs        []uuid.UUID `json:"deficiency_ids" doc:"IDs of created deficiencies"`
}

// CoverageUpdate reports coverage metrics for a run.
type CoverageUpdate struct {
	TotalTransitionsExecuted int            `json:"total_transitions_executed" doc:"Total executed"`
	UniqueTransitionsCovered int            `json:"unique_transitions_covered" doc:"Unique covered"`
	CoveragePercentage       float64        `json:"coverage_percentage" doc:"Coverage %"`
	TransitionCoverageMap    map[string]int `json:"transition_coverage_map,omitempty" doc:"Map of transition names to execution counts"`
	StateCoverageMap         map[string]int `json:"state_coverage_map,omitempty" doc:"Map of state names to visit counts"`
	UncoveredTransitions     []string       `json:"uncovered_transitions,omitempty" doc:"List of uncovered transitions"`
}

// CoverageUpdateResponse acknowledges a coverage update.
type CoverageUpdateResponse struct {
	RunID                    uuid.UUID `json:"run_id" doc:"Test run ID"`
	CoverageUpdated          bool      `json:"coverage_updated" doc:"Whether update succeeded"`
	CoveragePercentage       float64   `json:"coverage_percentage" doc:"Current coverage %"`
	UniqueTransitionsCovered int       `json:"unique_transitions_covered" doc:"Unique transitions covered"`
}

// ScreenshotMetadata accompanies a screenshot upload.
type ScreenshotMetadata struct {
	ScreenshotID             uuid.UUID      `json:"screenshot_id" doc:"Screenshot ID (client-generated)"`
	SequenceNumber           int            `json:"sequence_number" doc:"Screenshot sequence number"`
	TransitionSequenceNumber *int           `json:"transition_sequence_number,omitempty" doc:"Associated transition sequence number"`
	State                    *string        `json:"state,omitempty" doc:"State when taken"`
	ScreenshotType           ScreenshotType `json:"screenshot_type" doc:"Screenshot type"`
	Timestamp                time.Time      `json:"timestamp" doc:"Screenshot timestamp (UTC)"`
	Width                    int            `json:"width" doc:"Image width"`
	Height                   int            `json:"height" doc:"Image height"`
	Metadata                 map[string]any `json:"metadata,omitempty" doc:"Additional metadata"`
}

// VisualComparisonSummary summarizes a visual comparison result.
type VisualComparisonSummary struct {
	ComparisonID    uuid.UUID  `json:"comparison_id" doc:"Visual comparison result ID"`
	BaselineID      *uuid.UUID `json:"baseline_id,omitempty" doc:"Baseline ID compared against"`
	SimilarityScore float64    `json:"similarity_score" doc:"Similarity score (0.0-1.0)"`
	Threshold       float64    `json:"threshold" doc:"Threshold used"`
	Passed          bool       `json:"passed" doc:"Whether comparison passed"`
	Status          string     `json:"status" doc:"Comparison status"`
	DiffImageURL    *string    `json:"diff_image_url,omitempty" doc:"Diff image URL"`
	DiffRegionCount int        `json:"diff_region_count,omitempty" doc:"Number of diff regions"`
}

// ScreenshotUploadResponse acknowledges a screenshot upload.
type ScreenshotUploadResponse struct {
	ScreenshotID     uuid.UUID                `json:"screenshot_id" doc:"Screenshot ID"`
	RunID            uuid.UUID                `json:"run_id" doc:"Test run ID"`
	ImageURL         string                   `json:"image_url" doc:"Full image URL"`
	ThumbnailURL     *string                  `json:"thumbnail_url,omitempty" doc:"Thumbnail URL"`
	UploadedAt       time.Time                `json:"uploaded_at" doc:"Upload time (UTC)"`
	FileSizeBytes    int                      `json:"file_size_bytes" doc:"File size in bytes"`
	StateName        *string                  `json:"state_name,omitempty" doc:"State name"`
	VisualComparison *VisualComparisonSummary `json:"visual_comparison,omitempty" doc:"Visual comparison result"`
}

// CoverageTrendDataPoint is one point in a coverage trend series.
type CoverageTrendDataPoint struct {
	Date                     string  `json:"date" doc:"Date (YYYY-MM-DD)"`
	RunsCount                int     `json:"runs_count" doc:"Number of runs on this date"`
	AvgCoveragePercentage    float64 `json:"avg_coverage_percentage" doc:"Average coverage %"`
	MaxCoveragePercentage    float64 `json:"max_coverage_percentage" doc:"Maximum coverage %"`
	MinCoveragePercentage    float64 `json:"min_coverage_percentage" doc:"Minimum coverage %"`
	TotalTransitionsExecuted int     `json:"total_transitions_executed" doc:"Total transitions"`
	UniqueTransitionsCovered int     `json:"unique_transitions_covered" doc:"Unique transitions"`
}

// CoverageTrendResponse is the coverage trend series for a project.
type CoverageTrendResponse struct {
	ProjectID    uuid.UUID                `json:"project_id" doc:"Project ID"`
	StartDate    string                   `json:"start_date" doc:"Start date"`
	EndDate      string                   `json:"end_date" doc:"End date"`
	Granularity  string                   `json:"granularity" doc:"Granularity"`
	DataPoints   []CoverageTrendDataPoint `json:"data_points" doc:"Trend data"`
	OverallStats map[string]any           `json:"overall_stats" doc:"Overall statistics"`
}

// TransitionReliabilityStats aggregates executions of one transition.
type TransitionReliabilityStats struct {
	TransitionName       string           `json:"transition_name" doc:"Transition name"`
	FromState            string           `json:"from_state" doc:"Source state"`
	ToState              string           `json:"to_state" doc:"Destination state"`
	TotalExecutions      int              `json:"total_executions" doc:"Total executions"`
	SuccessfulExecutions int              `json:"successful_executions" doc:"Successful executions"`
	FailedExecutions     int              `json:"failed_executions" doc:"Failed executions"`
	SuccessRate          float64          `json:"success_rate" doc:"Success rate %"`
	AvgDurationMs        int              `json:"avg_duration_ms" doc:"Average duration ms"`
	MedianDurationMs     int              `json:"median_duration_ms" doc:"Median duration ms"`
	P95DurationMs        int              `json:"p95_duration_ms" doc:"95th percentile duration"`
	FailureModes         []map[string]any `json:"failure_modes,omitempty" doc:"Failure mode breakdown"`
}

// ReliabilityResponse is the reliability report for a workflow.
type ReliabilityResponse struct {
	WorkflowID         string                       `json:"workflow_id" doc:"Workflow ID"`
	WorkflowName       *string                      `json:"workflow_name,omitempty" doc:"Workflow name"`
	ProjectID          uuid.UUID                    `json:"project_id" doc:"Project ID"`
	DateRange          map[string]string            `json:"date_range" doc:"Date range"`
	TransitionStats    []TransitionReliabilityStats `json:"transition_stats" doc:"Transition statistics"`
	OverallReliability map[string]any               `json:"overall_reliability" doc:"Overall metrics"`
}

// HistoricalResultRequest asks for a random historical result for
// integration testing.
type HistoricalResultRequest struct {
	PatternID    *string    `json:"pattern_id,omitempty" doc:"Filter by pattern ID"`
	ActionType   *string    `json:"action_type,omitempty" doc:"Filter by action type (FIND, CLICK, etc.)"`
	ActiveStates []string   `json:"active_states,omitempty" doc:"Filter by active states (any match)"`
	SuccessOnly  bool       `json:"success_only,omitempty" doc:"Only return successful results"`
	WorkflowID   *int       `json:"workflow_id,omitempty" doc:"Filter by workflow ID"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty" doc:"Filter by project ID"`
}

// HistoricalResultResponse is one historical action result.
type HistoricalResultResponse struct {
	ID               int      `json:"id" doc:"Historical result ID"`
	PatternID        *string  `json:"pattern_id,omitempty" doc:"Pattern ID"`
	PatternName      *string  `json:"pattern_name,omitempty" doc:"Pattern name"`
	ActionType       string   `json:"action_type" doc:"Action type"`
	ActiveStates     []string `json:"active_states,omitempty" doc:"Active states"`
	Success          bool     `json:"success" doc:"Whether action succeeded"`
	MatchCount       *int     `json:"match_count,omitempty" doc:"Number of matches"`
	BestMatchScore   *float64 `json:"best_match_score,omitempty" doc:"Best match score"`
	MatchX           *int     `json:"match_x,omitempty" doc:"Match X coordinate"`
	MatchY           *int     `json:"match_y,omitempty" doc:"Match Y coordinate"`
	MatchWidth       *int     `json:"match_width,omitempty" doc:"Match width"`
	MatchHeight      *int     `json:"match_height,omitempty" doc:"Match height"`
	FrameTimestampMs *int     `json:"frame_timestamp_ms,omitempty" doc:"Frame timestamp"`
	HasFrame         bool     `json:"has_frame,omitempty" doc:"Whether frame is available"`
}

// ActionDataCreate is action data submitted by the runner for
// historical indexing.
type ActionDataCreate struct {
	ActionID       string         `json:"action_id" doc:"Unique action ID"`
	ActionType     string         `json:"action_type" doc:"Action type (FIND, CLICK, TYPE, etc.)"`
	Success        bool           `json:"success" doc:"Whether action succeeded"`
	PatternID      *string        `json:"pattern_id,omitempty" doc:"Pattern ID if applicable"`
	PatternName    *string        `json:"pattern_name,omitempty" doc:"Pattern name if applicable"`
	ActiveStates   []string       `json:"active_states,omitempty" doc:"Active states during action"`
	MatchCount     *int           `json:"match_count,omitempty" doc:"Number of matches found"`
	BestMatchScore *float64       `json:"best_match_score,omitempty" doc:"Best match confidence"`
	MatchX         *int           `json:"match_x,omitempty" doc:"Match X coordinate"`
	MatchY         *int           `json:"match_y,omitempty" doc:"Match Y coordinate"`
	MatchWidth     *int           `json:"match_width,omitempty" doc:"Match width"`
	MatchHeight    *int           `json:"match_height,omitempty" doc:"Match height"`
	DurationMs     *int           `json:"duration_ms,omitempty" doc:"Action duration in ms"`
	ResultData     map[string]any `json:"result_data,omitempty" doc:"Additional result data"`
}

// ActionDataBatch is a batch of action data from the runner.
type ActionDataBatch struct {
	RunID      uuid.UUID          `json:"run_id" doc:"Test run or execution ID"`
	ProjectID  uuid.UUID          `json:"project_id" doc:"Project ID"`
	WorkflowID *int               `json:"workflow_id,omitempty" doc:"Workflow ID if applicable"`
	Actions    []ActionDataCreate `json:"actions" doc:"List of action data"`
}

// ActionDataBatchResponse acknowledges batch action data submission.
type ActionDataBatchResponse struct {
	Indexed int       `json:"indexed" doc:"Number of actions indexed"`
	RunID   uuid.UUID `json:"run_id" doc:"Test run ID"`
}

// HistoricalFrameResponse carries frame data for playback.
type HistoricalFrameResponse struct {
	HistoricalResultID int     `json:"historical_result_id" doc:"Historical result ID"`
	ActionType         string  `json:"action_type" doc:"Action type"`
	PatternID          *string `json:"pattern_id,omitempty" doc:"Pattern ID"`
	PatternName        *string `json:"pattern_name,omitempty" doc:"Pattern name"`
	Success            bool    `json:"success" doc:"Whether action succeeded"`
	MatchX             *int    `json:"match_x,omitempty" doc:"Match X coordinate"`
	MatchY             *int    `json:"match_y,omitempty" doc:"Match Y coordinate"`
	MatchWidth         *int    `json:"match_width,omitempty" doc:"Match width"`
	MatchHeight        *int    `json:"match_height,omitempty" doc:"Match height"`
	TimestampMs        *int    `json:"timestamp_ms,omitempty" doc:"Timestamp in ms"`
	FrameBase64        *string `json:"frame_base64,omitempty" doc:"Base64 encoded JPEG frame"`
	HasFrame           bool    `json:"has_frame,omitempty" doc:"Whether frame is available"`
}

// PlaybackRequest asks for integration test playback frames.
type PlaybackRequest struct {
	HistoricalResultIDs []int `json:"historical_result_ids" doc:"List of historical result IDs in order"`
}

// Batch lists the domain's declarations in emission order, enums
// first.
func Batch() *registry.Batch {
	return registry.NewBatch("testing",
		registry.EnumDecl("TestRunStatus",
			registry.Member("RUNNING", "running"),
			registry.Member("COMPLETED", "completed"),
			registry.Member("FAILED", "failed"),
			registry.Member("TIMEOUT", "timeout"),
			registry.Member("CANCELLED", "cancelled"),
		),
		registry.EnumDecl("TransitionStatus",
			registry.Member("SUCCESS", "success"),
			registry.Member("FAILED", "failed"),
			registry.Member("TIMEOUT", "timeout"),
			registry.Member("SKIPPED", "skipped"),
			registry.Member("ERROR", "error"),
		),
		registry.EnumDecl("DeficiencySeverity",
			registry.Member("CRITICAL", "critical"),
			registry.Member("HIGH", "high"),
			registry.Member("MEDIUM", "medium"),
			registry.Member("LOW", "low"),
			registry.Member("INFO", "informational"),
		),
		registry.EnumDecl("DeficiencyStatus",
			registry.Member("NEW", "new"),
			registry.Member("OPEN", "open"),
			registry.Member("IN_PROGRESS", "in_progress"),
			registry.Member("RESOLVED", "resolved"),
			registry.Member("CLOSED", "closed"),
			registry.Member("WONT_FIX", "wont_fix"),
		),
		registry.EnumDecl("DeficiencyType",
			registry.Member("FUNCTIONAL", "functional_bug"),
			registry.Member("VISUAL", "ui_issue"),
			registry.Member("PERFORMANCE", "performance"),
			registry.Member("CRASH", "crash"),
			registry.Member("SECURITY", "security"),
			registry.Member("ACCESSIBILITY", "accessibility"),
			registry.Member("DATA", "data"),
			registry.Member("OTHER", "other"),
		),
		registry.EnumDecl("ScreenshotType",
			registry.Member("ERROR", "error"),
			registry.Member("SUCCESS", "success"),
			registry.Member("MANUAL", "manual"),
			registry.Member("PERIODIC", "periodic"),
			registry.Member("STATE_VERIFICATION", "state_verification"),
			registry.Member("ACTION_RESULT", "action_result"),
			registry.Member("BEFORE_ACTION", "before_action"),
			registry.Member("AFTER_ACTION", "after_action"),
		),
		registry.ModelDecl(Pagination{}),
		registry.ModelDecl(PaginatedResponse{}),
		registry.ModelDecl(TestRunCreate{}),
		registry.ModelDecl(TestRunResponse{}),
		registry.ModelDecl(TestRunDetail{}),
		registry.ModelDecl(TestRunListResponse{}),
		registry.ModelDecl(TestRunComplete{}),
		registry.ModelDecl(TestRunCompleteResponse{}),
		registry.ModelDecl(TransitionCreate{}),
		registry.ModelDecl(TransitionBatchCreate{}),
		registry.ModelDecl(TransitionResponse{}),
		registry.ModelDecl(TransitionBatchResponse{}),
		registry.ModelDecl(DeficiencyCreate{}),
		registry.ModelDecl(DeficiencyBatchCreate{}),
		registry.ModelDecl(DeficiencyResponse{}),
		registry.ModelDecl(DeficiencyDetail{}),
		registry.ModelDecl(DeficiencyUpdate{}),
		registry.ModelDecl(DeficiencyListResponse{}),
		registry.ModelDecl(DeficiencyBatchResponse{}),
		registry.ModelDecl(CoverageUpdate{}),
		registry.ModelDecl(CoverageUpdateResponse{}),
		registry.ModelDecl(ScreenshotMetadata{}),
		registry.ModelDecl(VisualComparisonSummary{}),
		registry.ModelDecl(ScreenshotUploadResponse{}),
		registry.ModelDecl(CoverageTrendDataPoint{}),
		registry.ModelDecl(CoverageTrendResponse{}),
		registry.ModelDecl(TransitionReliabilityStats{}),
		registry.ModelDecl(ReliabilityResponse{}),
		registry.ModelDecl(HistoricalResultRequest{}),
		registry.ModelDecl(HistoricalResultResponse{}),
		registry.ModelDecl(ActionDataCreate{}),
		registry.ModelDecl(ActionDataBatch{}),
		registry.ModelDecl(ActionDataBatchResponse{}),
		registry.ModelDecl(HistoricalFrameResponse{}),
		registry.ModelDecl(PlaybackRequest{}),
	)
}
