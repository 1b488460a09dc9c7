// Package templatecapture holds the click-to-template DTOs shared
// across the library, runner, and web components. This domain's wire
// format is camelCase, carried in alias tags.
package templatecapture

import (
	"github.com/qontinui/qontinui-schemas/internal/registry"
)

// ElementType classifies GUI elements the detector can find.
type ElementType string

const (
	ElementTypeButton     ElementType = "button"
	ElementTypeIcon       ElementType = "icon"
	ElementTypeText       ElementType = "text"
	ElementTypeImage      ElementType = "image"
	ElementTypeCheckbox   ElementType = "checkbox"
	ElementTypeRadio      ElementType = "radio"
	ElementTypeInputField ElementType = "input_field"
	ElementTypeLink       ElementType = "link"
	ElementTypeMenuItem   ElementType = "menu_item"
	ElementTypeTab        ElementType = "tab"
	ElementTypeUnknown    ElementType = "unknown"
)

// DetectionStrategyType names the boundary detection strategies.
type DetectionStrategyType string

const (
	DetectionStrategyEdgeBased         DetectionStrategyType = "edge_based"
	DetectionStrategyContourBased      DetectionStrategyType = "contour_based"
	DetectionStrategyColorSegmentation DetectionStrategyType = "color_segmentation"
	DetectionStrategyFloodFill         DetectionStrategyType = "flood_fill"
	DetectionStrategyGradientBased     DetectionStrategyType = "gradient_based"
	DetectionStrategyTemplateMatch     DetectionStrategyType = "template_match"
	DetectionStrategyFixedSize         DetectionStrategyType = "fixed_size"
)

// CandidateStatus is the review status of a template candidate.
type CandidateStatus string

const (
	CandidateStatusPending  CandidateStatus = "pending"
	CandidateStatusApproved CandidateStatus = "approved"
	CandidateStatusRejected CandidateStatus = "rejected"
	CandidateStatusModified CandidateStatus = "modified"
)

// GroupingMethod selects how templates are grouped into states.
type GroupingMethod string

const (
	GroupingMethodStateHints     GroupingMethod = "state_hints"
	GroupingMethodUserAssigned   GroupingMethod = "user_assignments"
	GroupingMethodCoOccurrence   GroupingMethod = "co_occurrence"
	GroupingMethodSingleState    GroupingMethod = "single_state"
	GroupingMethodOnePerTemplate GroupingMethod = "one_per_template"
)

// CandidateBoundingBox is the bounding box of a detected element.
type CandidateBoundingBox struct {
	X            int                   `json:"x" doc:"X coordinate of top-left corner"`
	Y            int                   `json:"y" doc:"Y coordinate of top-left corner"`
	Width        int                   `json:"width" doc:"Width of the bounding box"`
	Height       int                   `json:"height" doc:"Height of the bounding box"`
	Confidence   float64               `json:"confidence,omitempty" doc:"Detection confidence score"`
	StrategyUsed DetectionStrategyType `json:"strategy_used,omitempty" alias:"strategyUsed" doc:"Detection strategy that found this boundary"`
	ElementType  ElementType           `json:"element_type,omitempty" alias:"elementType" doc:"Detected element type"`
	HasMask      bool                  `json:"has_mask,omitempty" alias:"hasMask" doc:"Whether a non-rectangular mask is available"`
	Metadata     map[string]any        `json:"metadata,omitempty" doc:"Additional detection metadata"`
}

// TemplateCandidateCreate is a candidate submitted by the runner.
type TemplateCandidateCreate struct {
	ID                      string                  `json:"id" doc:"Unique identifier for the candidate"`
	SessionID               string                  `json:"session_id" alias:"sessionId" doc:"ID of the capture session"`
	ClickX                  int                     `json:"click_x" alias:"clickX" doc:"X coordinate of the original click"`
	ClickY                  int                     `json:"click_y" alias:"clickY" doc:"Y coordinate of the original click"`
	ClickButton             string                  `json:"click_button,omitempty" alias:"clickButton" doc:"Mouse button used"`
	Timestamp               float64                 `json:"timestamp" doc:"Time of click in seconds from session start"`
	FrameNumber             int                     `json:"frame_number" alias:"frameNumber" doc:"Video frame number"`
	PrimaryBoundary         CandidateBoundingBox    `json:"primary_boundary" alias:"primaryBoundary" doc:"Best detected bounding box"`
	AlternativeBoundaries   []CandidateBoundingBox  `json:"alternative_boundaries,omitempty" alias:"alternativeBoundaries" doc:"Alternative bounding boxes"`
	DetectionStrategiesUsed []DetectionStrategyType `json:"detection_strategies_used,omitempty" alias:"detectionStrategiesUsed" doc:"Strategies attempted"`
	PixelDataBase64         *string                 `json:"pixel_data_base64,omitempty" alias:"pixelDataBase64" doc:"Base64-encoded pixel data"`
	MaskBase64              *string                 `json:"mask_base64,omitempty" alias:"maskBase64" doc:"Base64-encoded mask data"`
	PixelShape              []int                   `json:"pixel_shape,omitempty" alias:"pixelShape" doc:"Shape of pixel data array"`
	MaskShape               []int                   `json:"mask_shape,omitempty" alias:"maskShape" doc:"Shape of mask array"`
	ApplicationHint         *string                 `json:"application_hint,omitempty" alias:"applicationHint" doc:"Application name for profile lookup"`
	ConfidenceScore         float64                 `json:"confidence_score,omitempty" alias:"confidenceScore" doc:"Overall detection confidence"`
	ElementType             string                  `json:"element_type,omitempty" alias:"elementType" doc:"Detected element type"`
}

// TemplateCandidateBatchCreate creates multiple candidates at once.
type TemplateCandidateBatchCreate struct {
	Candidates []TemplateCandidateCreate `json:"candidates" doc:"List of candidates to create"`
}

// TemplateCandidateResponse is the API shape of a candidate.
type TemplateCandidateResponse struct {
	ID              string               `json:"id" doc:"Unique identifier"`
	SessionID       string               `json:"session_id" alias:"sessionId" doc:"Capture session ID"`
	ProjectID       *string              `json:"project_id,omitempty" alias:"projectId" doc:"Project ID"`
	ClickX          int                  `json:"click_x" alias:"clickX" doc:"Click X coordinate"`
	ClickY          int                  `json:"click_y" alias:"clickY" doc:"Click Y coordinate"`
	ClickButton     string               `json:"click_button" alias:"clickButton" doc:"Mouse button"`
	Timestamp       float64              `json:"timestamp" doc:"Click timestamp"`
	FrameNumber     int                  `json:"frame_number" alias:"frameNumber" doc:"Frame number"`
	PrimaryBoundary CandidateBoundingBox `json:"primary_boundary" alias:"primaryBoundary" doc:"Primary bounding box"`
	Status          CandidateStatus      `json:"status,omitempty" doc:"Review status"`
	ConfidenceScore float64              `json:"confidence_score" alias:"confidenceScore" doc:"Detection confidence"`
	ElementType     string               `json:"element_type" alias:"elementType" doc:"Element type"`
	ApplicationHint *string              `json:"application_hint,omitempty" alias:"applicationHint" doc:"Application name"`
	PixelDataURL    *string              `json:"pixel_data_url,omitempty" alias:"pixelDataUrl" doc:"URL to pixel data image"`
	ThumbnailURL    *string              `json:"thumbnail_url,omitempty" alias:"thumbnailUrl" doc:"URL to thumbnail"`
	CreatedAt       string               `json:"created_at" alias:"createdAt" doc:"ISO timestamp of creation"`
}

// TemplateCandidateDetail is the full candidate record.
type TemplateCandidateDetail struct {
	TemplateCandidateResponse
	AlternativeBoundaries   []CandidateBoundingBox  `json:"alternative_boundaries,omitempty" alias:"alternativeBoundaries" doc:"Alternative boundaries"`
	DetectionStrategiesUsed []DetectionStrategyType `json:"detection_strategies_used,omitempty" alias:"detectionStrategiesUsed" doc:"Strategies used"`
	AdjustedBoundary        *CandidateBoundingBox   `json:"adjusted_boundary,omitempty" alias:"adjustedBoundary" doc:"User-adjusted boundary"`
	MaskURL                 *string                 `json:"mask_url,omitempty" alias:"maskUrl" doc:"URL to mask image"`
	ReviewedBy              *string                 `json:"reviewed_by,omitempty" alias:"reviewedBy" doc:"User ID who reviewed"`
	ReviewedAt              *string                 `json:"reviewed_at,omitempty" alias:"reviewedAt" doc:"Review timestamp"`
}

// TemplateCandidateSummary is the listing shape of a candidate.
type TemplateCandidateSummary struct {
	ID              string          `json:"id" doc:"Unique identifier"`
	SessionID       string          `json:"session_id" alias:"sessionId" doc:"Session ID"`
	ClickX          int             `json:"click_x" alias:"clickX" doc:"Click X"`
	ClickY          int             `json:"click_y" alias:"clickY" doc:"Click Y"`
	Status          CandidateStatus `json:"status" doc:"Review status"`
	ConfidenceScore float64         `json:"confidence_score" alias:"confidenceScore" doc:"Confidence"`
	ElementType     string          `json:"element_type" alias:"elementType" doc:"Element type"`
	ThumbnailURL    *string         `json:"thumbnail_url,omitempty" alias:"thumbnailUrl" doc:"Thumbnail URL"`
	CreatedAt       string          `json:"created_at" alias:"createdAt" doc:"Creation timestamp"`
}

// TemplateCandidateUpdate modifies a candidate during review.
type TemplateCandidateUpdate struct {
	Status           *CandidateStatus      `json:"status,omitempty" doc:"New status"`
	AdjustedBoundary *CandidateBoundingBox `json:"adjusted_boundary,omitempty" alias:"adjustedBoundary" doc:"User-adjusted boundary"`
}

// TemplateCandidateListResponse lists template candidates.
type TemplateCandidateListResponse struct {
	Items []TemplateCandidateSummary `json:"items" doc:"List of candidates"`
	Total int                        `json:"total" doc:"Total count"`
}

// TuningMetrics are the metrics from profile tuning.
type TuningMetrics struct {
	SampleCount        int     `json:"sample_count,omitempty" alias:"sampleCount" doc:"Number of samples used"`
	EdgeScore          float64 `json:"edge_score,omitempty" alias:"edgeScore" doc:"Edge detection score"`
	ContourScore       float64 `json:"contour_score,omitempty" alias:"contourScore" doc:"Contour detection score"`
	ColorScore         float64 `json:"color_score,omitempty" alias:"colorScore" doc:"Color segmentation score"`
	FloodFillScore     float64 `json:"flood_fill_score,omitempty" alias:"floodFillScore" doc:"Flood fill score"`
	GradientScore      float64 `json:"gradient_score,omitempty" alias:"gradientScore" doc:"Gradient detection score"`
	AvgDetectionTimeMs float64 `json:"avg_detection_time_ms,omitempty" alias:"avgDetectionTimeMs" doc:"Average detection time"`
	AvgConfidence      float64 `json:"avg_confidence,omitempty" alias:"avgConfidence" doc:"Average confidence"`
	TuningIterations   int     `json:"tuning_iterations,omitempty" alias:"tuningIterations" doc:"Number of tuning iterations"`
	LastTunedAt        *string `json:"last_tuned_at,omitempty" alias:"lastTunedAt" doc:"Last tuning timestamp"`
}

// TuningRequest tunes an application profile against sample
// screenshots.
type TuningRequest struct {
	ScreenshotURLs []string               `json:"screenshot_urls,omitempty" alias:"screenshotUrls" doc:"URLs to sample screenshots"`
	KnownElements  []CandidateBoundingBox `json:"known_elements,omitempty" alias:"knownElements" doc:"Optional ground truth elements"`
}

// TuningResult is the outcome of profile tuning.
type TuningResult struct {
	Success          bool           `json:"success" doc:"Whether tuning succeeded"`
	Metrics          *TuningMetrics `json:"metrics,omitempty" doc:"Tuning metrics"`
	StrategyRankings [][]any        `json:"strategy_rankings,omitempty" alias:"strategyRankings" typeexpr:"list[tuple[str, float]]" doc:"Strategies ranked by score"`
	ErrorMessage     *string        `json:"error_message,omitempty" alias:"errorMessage" doc:"Error message if failed"`
}

// InferenceConfigSchema configures boundary detection.
type InferenceConfigSchema struct {
	SearchRadius                int                     `json:"search_radius,omitempty" alias:"searchRadius" doc:"Max distance from click to search"`
	MinElementSize              []int                   `json:"min_element_size,omitempty" alias:"minElementSize" doc:"Minimum element dimensions [w, h]"`
	MaxElementSize              []int                   `json:"max_element_size,omitempty" alias:"maxElementSize" doc:"Maximum element dimensions [w, h]"`
	EdgeThresholdLow            int                     `json:"edge_threshold_low,omitempty" alias:"edgeThresholdLow" doc:"Low Canny threshold"`
	EdgeThresholdHigh           int                     `json:"edge_threshold_high,omitempty" alias:"edgeThresholdHigh" doc:"High Canny threshold"`
	ColorTolerance              int                     `json:"color_tolerance,omitempty" alias:"colorTolerance" doc:"Color segmentation tolerance"`
	ContourAreaMin              int                     `json:"contour_area_min,omitempty" alias:"contourAreaMin" doc:"Minimum contour area"`
	FallbackBoxSize             int                     `json:"fallback_box_size,omitempty" alias:"fallbackBoxSize" doc:"Fallback box size"`
	UseFallback                 bool                    `json:"use_fallback,omitempty" alias:"useFallback" doc:"Use fallback if no detection"`
	PreferredStrategies         []DetectionStrategyType `json:"preferred_strategies,omitempty" alias:"preferredStrategies" doc:"Preferred detection strategies"`
	EnableMaskGeneration        bool                    `json:"enable_mask_generation,omitempty" alias:"enableMaskGeneration" doc:"Generate masks for non-rect elements"`
	EnableElementClassification bool                    `json:"enable_element_classification,omitempty" alias:"enableElementClassification" doc:"Classify element types"`
}

// ApplicationProfileCreate creates an application profile.
type ApplicationProfileCreate struct {
	Name            string                 `json:"name" doc:"Application name (e.g., 'Civilization 6')"`
	InferenceConfig *InferenceConfigSchema `json:"inference_config,omitempty" alias:"inferenceConfig" doc:"Detection configuration"`
}

// ApplicationProfileResponse is the API shape of an application
// profile.
type ApplicationProfileResponse struct {
	ID                  string                  `json:"id" doc:"Unique identifier"`
	Name                string                  `json:"name" doc:"Application name"`
	InferenceConfig     InferenceConfigSchema   `json:"inference_config" alias:"inferenceConfig" doc:"Detection configuration"`
	PreferredStrategies []DetectionStrategyType `json:"preferred_strategies,omitempty" alias:"preferredStrategies" doc:"Preferred strategies"`
	AvgElementSize      []int                   `json:"avg_element_size,omitempty" alias:"avgElementSize" doc:"Average element size [w, h]"`
	TuningMetrics       *TuningMetrics          `json:"tuning_metrics,omitempty" alias:"tuningMetrics" doc:"Tuning metrics"`
	SuccessRate         float64                 `json:"success_rate,omitempty" alias:"successRate" doc:"Detection success rate"`
	SampleCount         int                     `json:"sample_count,omitempty" alias:"sampleCount" doc:"Number of samples used"`
	CreatedAt           string                  `json:"created_at" alias:"createdAt" doc:"Creation timestamp"`
	UpdatedAt           string                  `json:"updated_at" alias:"updatedAt" doc:"Last update timestamp"`
}

// ApplicationProfileUpdate modifies an application profile.
type ApplicationProfileUpdate struct {
	Name                *string                 `json:"name,omitempty" doc:"New name"`
	InferenceConfig     *InferenceConfigSchema  `json:"inference_config,omitempty" alias:"inferenceConfig" doc:"Updated config"`
	PreferredStrategies []DetectionStrategyType `json:"preferred_strategies,omitempty" alias:"preferredStrategies" doc:"Updated strategies"`
}

// ApplicationProfile is the full profile model, same shape as the
// response.
type ApplicationProfile struct {
	ApplicationProfileResponse
}

// ApplicationProfileListResponse lists application profiles.
type ApplicationProfileListResponse struct {
	Items []ApplicationProfileResponse `json:"items" doc:"List of profiles"`
	Total int                          `json:"total" doc:"Total count"`
}

// ApprovedTemplateData is a user-approved template from the web UI,
// ready for state machine generation.
type ApprovedTemplateData struct {
	ID             string               `json:"id" doc:"Unique identifier for the template"`
	SessionID      string               `json:"session_id" alias:"sessionId" doc:"ID of the capture session"`
	ClickX         int                  `json:"click_x" alias:"clickX" doc:"X coordinate of the original click"`
	ClickY         int                  `json:"click_y" alias:"clickY" doc:"Y coordinate of the original click"`
	ClickTimestamp float64              `json:"click_timestamp" alias:"clickTimestamp" doc:"Unix timestamp of when click occurred"`
	FrameNumber    int                  `json:"frame_number" alias:"frameNumber" doc:"Frame number in video"`
	Boundary       CandidateBoundingBox `json:"boundary" doc:"Approved bounding box"`
	Name           *string              `json:"name,omitempty" doc:"User-assigned name"`
	StateHint      *string              `json:"state_hint,omitempty" alias:"stateHint" doc:"User-assigned state grouping hint"`
	ElementType    string               `json:"element_type,omitempty" alias:"elementType" doc:"Element type"`
	Confidence     float64              `json:"confidence,omitempty" doc:"Detection confidence"`
	ApprovedAt     *string              `json:"approved_at,omitempty" alias:"approvedAt" doc:"ISO timestamp of approval"`
	Metadata       map[string]any       `json:"metadata,omitempty" doc:"Additional metadata"`
}

// GenerateStateMachineRequest generates a state machine from approved
// templates.
type GenerateStateMachineRequest struct {
	ApprovedTemplates []ApprovedTemplateData `json:"approved_templates" alias:"approvedTemplates" doc:"List of approved templates to process"`
	GroupingMethod    GroupingMethod         `json:"grouping_method,omitempty" alias:"groupingMethod" doc:"How to group templates into states"`
	StateAssignments  map[string][]string    `json:"state_assignments,omitempty" alias:"stateAssignments" doc:"Explicit state-to-template mappings (required if using user_assignments)"`
	SessionID         *string                `json:"session_id,omitempty" alias:"sessionId" doc:"Session ID for metadata"`
	VideoPath         *string                `json:"video_path,omitempty" alias:"videoPath" doc:"Path to video file used for capture"`
}

// StateImageDefResponse is a StateImage definition in the generated
// state machine.
type StateImageDefResponse struct {
	ID                  string         `json:"id" doc:"Unique identifier for the state image"`
	Name                *string        `json:"name,omitempty" doc:"Human-readable name"`
	TemplatePath        *string        `json:"template_path,omitempty" alias:"templatePath" doc:"Path to template image file"`
	SimilarityThreshold float64        `json:"similarity_threshold,omitempty" alias:"similarityThreshold" doc:"Matching threshold"`
	ClickOffset         *[2]int        `json:"click_offset,omitempty" alias:"clickOffset" typeexpr:"Optional[tuple[int, int]]" doc:"Click offset from template center"`
	SourceTemplateID    *string        `json:"source_template_id,omitempty" alias:"sourceTemplateId" doc:"ID of the original approved template"`
	Metadata            map[string]any `json:"metadata,omitempty" doc:"Additional metadata"`
}

// StateDefResponse is a state definition in the generated state
// machine.
type StateDefResponse struct {
	StateID     string                  `json:"state_id" alias:"stateId" doc:"Unique identifier for the state"`
	StateName   string                  `json:"state_name" alias:"stateName" doc:"Human-readable state name"`
	StateImages []StateImageDefResponse `json:"state_images,omitempty" alias:"stateImages" doc:"StateImages that identify this state"`
	Description string                  `json:"description,omitempty" doc:"Description of the state"`
	IsInitial   bool                    `json:"is_initial,omitempty" alias:"isInitial" doc:"Whether this is an initial state"`
	Metadata    map[string]any          `json:"metadata,omitempty" doc:"Additional metadata"`
}

// TransitionDefResponse is a transition definition in the generated
// state machine.
type TransitionDefResponse struct {
	TransitionID   string  `json:"transition_id" alias:"transitionId" doc:"Unique identifier"`
	FromState      string  `json:"from_state" alias:"fromState" doc:"Source state ID"`
	ToState        string  `json:"to_state" alias:"toState" doc:"Target state ID"`
	TriggerImageID *string `json:"trigger_image_id,omitempty" alias:"triggerImageId" doc:"StateImage ID that triggers the transition"`
	ActionType     string  `json:"action_type,omitempty" alias:"actionType" doc:"Type of action to perform"`
	Description    string  `json:"description,omitempty" doc:"Human-readable description"`
}

// StateMachineConfigResponse is the generated state machine
// configuration.
type StateMachineConfigResponse struct {
	Name           string                  `json:"name,omitempty" doc:"State machine name"`
	States         []StateDefResponse      `json:"states,omitempty" doc:"State definitions"`
	Transitions    []TransitionDefResponse `json:"transitions,omitempty" doc:"Transition definitions"`
	InitialStateID *string                 `json:"initial_state_id,omitempty" alias:"initialStateId" doc:"ID of the initial state"`
	Metadata       map[string]any          `json:"metadata,omitempty" doc:"Additional metadata"`
	Version        string                  `json:"version,omitempty" doc:"Config version"`
}

// GenerateStateMachineResponse reports the generation outcome.
type GenerateStateMachineResponse struct {
	Success          bool                        `json:"success" doc:"Whether generation succeeded"`
	StateMachine     *StateMachineConfigResponse `json:"state_machine,omitempty" alias:"stateMachine" doc:"Generated state machine configuration"`
	StatesCount      int                         `json:"states_count,omitempty" alias:"statesCount" doc:"Number of states"`
	StateImagesCount int                         `json:"state_images_count,omitempty" alias:"stateImagesCount" doc:"Total number of state images"`
	TransitionsCount int                         `json:"transitions_count,omitempty" alias:"transitionsCount" doc:"Number of transitions"`
	UngroupedCount   int                         `json:"ungrouped_count,omitempty" alias:"ungroupedCount" doc:"Templates not assigned to any state"`
	ProcessingTimeMs float64                     `json:"processing_time_ms,omitempty" alias:"processingTimeMs" doc:"Processing time in milliseconds"`
	ErrorMessage     *string                     `json:"error_message,omitempty" alias:"errorMessage" doc:"Error message if failed"`
}

// Batch lists the domain's declarations in emission order, enums
// first.
func Batch() *registry.Batch {
	return registry.NewBatch("template_capture",
		registry.EnumDecl("ElementType",
			registry.Member("BUTTON", "button"),
			registry.Member("ICON", "icon"),
			registry.Member("TEXT", "text"),
			registry.Member("IMAGE", "image"),
			registry.Member("CHECKBOX", "checkbox"),
			registry.Member("RADIO", "radio"),
			registry.Member("INPUT_FIELD", "input_field"),
			registry.Member("LINK", "link"),
			registry.Member("MENU_ITEM", "menu_item"),
			registry.Member("TAB", "tab"),
			registry.Member("UNKNOWN", "unknown"),
		),
		registry.EnumDecl("DetectionStrategyType",
			registry.Member("EDGE_BASED", "edge_based"),
			registry.Member("CONTOUR_BASED", "contour_based"),
			registry.Member("COLOR_SEGMENTATION", "color_segmentation"),
			registry.Member("FLOOD_FILL", "flood_fill"),
			registry.Member("GRADIENT_BASED", "gradient_based"),
			registry.Member("TEMPLATE_MATCH", "template_match"),
			registry.Member("FIXED_SIZE", "fixed_size"),
		),
		registry.EnumDecl("CandidateStatus",
			registry.Member("PENDING", "pending"),
			registry.Member("APPROVED", "approved"),
			registry.Member("REJECTED", "rejected"),
			registry.Member("MODIFIED", "modified"),
		),
		registry.EnumDecl("GroupingMethod",
			registry.Member("STATE_HINTS", "state_hints"),
			registry.Member("USER_ASSIGNMENTS", "user_assignments"),
			registry.Member("CO_OCCURRENCE", "co_occurrence"),
			registry.Member("SINGLE_STATE", "single_state"),
			registry.Member("ONE_PER_TEMPLATE", "one_per_template"),
		),
		registry.ModelDecl(CandidateBoundingBox{}),
		registry.ModelDecl(TemplateCandidateCreate{}),
		registry.ModelDecl(TemplateCandidateBatchCreate{}),
		registry.ModelDecl(TemplateCandidateResponse{}),
		registry.ModelDecl(TemplateCandidateDetail{}),
		registry.ModelDecl(TemplateCandidateSummary{}),
		registry.ModelDecl(TemplateCandidateUpdate{}),
		registry.ModelDecl(TemplateCandidateListResponse{}),
		registry.ModelDecl(TuningMetrics{}),
		registry.ModelDecl(TuningRequest{}),
		registry.ModelDecl(TuningResult{}),
		registry.ModelDecl(InferenceConfigSchema{}),
		registry.ModelDecl(ApplicationProfileCreate{}),
		registry.ModelDecl(ApplicationProfileResponse{}),
		registry.ModelDecl(ApplicationProfileUpdate{}),
		registry.ModelDecl(ApplicationProfile{}),
		registry.ModelDecl(ApplicationProfileListResponse{}),
		registry.ModelDecl(ApprovedTemplateData{}),
		registry.ModelDecl(GenerateStateMachineRequest{}),
		registry.ModelDecl(StateImageDefResponse{}),
		registry.ModelDecl(StateDefResponse{}),
		registry.ModelDecl(TransitionDefResponse{}),
		registry.ModelDecl(StateMachineConfigResponse{}),
		registry.ModelDecl(GenerateStateMachineResponse{}),
	)
}
