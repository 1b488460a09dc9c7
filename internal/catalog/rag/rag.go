// Package rag holds the RAG API DTOs shared between the web backend,
// the web frontend, and the runner. All timestamp fields are UTC and
// serialize as ISO 8601 strings with a Z suffix.
package rag

import (
	"time"

	"github.com/qontinui/qontinui-schemas/internal/registry"
)

// JobStatus is the status of an embedding generation job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// RagProcessingStatus is the status of RAG processing in the runner.
type RagProcessingStatus string

const (
	RagProcessingNotStarted RagProcessingStatus = "not_started"
	RagProcessingInProgress RagProcessingStatus = "in_progress"
	RagProcessingCompleted  RagProcessingStatus = "completed"
	RagProcessingFailed     RagProcessingStatus = "failed"
)

// ComputeTextEmbeddingRequest asks for a text embedding for semantic
// search.
type ComputeTextEmbeddingRequest struct {
	Text  string `json:"text" doc:"Text to encode into embedding space"`
	Model string `json:"model,omitempty" doc:"Embedding model: 'clip' (512-dim) or 'minilm' (384-dim)"`
}

// ComputeTextEmbeddingResponse carries the computed text embedding.
type ComputeTextEmbeddingResponse struct {
	Success          bool      `json:"success" doc:"Whether embedding computation succeeded"`
	Embedding        []float64 `json:"embedding,omitempty" doc:"Text embedding vector"`
	EmbeddingDim     int       `json:"embedding_dim,omitempty" doc:"Dimension of the embedding vector"`
	ProcessingTimeMs float64   `json:"processing_time_ms,omitempty" doc:"Processing time in milliseconds"`
	Error            *string   `json:"error,omitempty" doc:"Error message if failed"`
}

// ComputeEmbeddingRequest asks for embeddings for a single image.
type ComputeEmbeddingRequest struct {
	ImageData            string  `json:"image_data" doc:"Base64 encoded image data"`
	ComputeTextEmbedding bool    `json:"compute_text_embedding,omitempty" doc:"Also compute text embedding from OCR"`
	TextDescription      *string `json:"text_description,omitempty" doc:"Optional text description for text embedding"`
}

// ComputeEmbeddingResponse carries the computed embeddings for a
// single image.
type ComputeEmbeddingResponse struct {
	Success          bool      `json:"success" doc:"Whether embedding computation succeeded"`
	ImageEmbedding   []float64 `json:"image_embedding,omitempty" doc:"CLIP image embedding vector (512 dimensions)"`
	TextEmbedding    []float64 `json:"text_embedding,omitempty" doc:"Text embedding vector (384 dimensions)"`
	TextDescription  *string   `json:"text_description,omitempty" doc:"AI-generated text description"`
	OcrText          *string   `json:"ocr_text,omitempty" doc:"Text extracted via OCR"`
	OcrConfidence    *float64  `json:"ocr_confidence,omitempty" doc:"OCR confidence score (0-1)"`
	ProcessingTimeMs float64   `json:"processing_time_ms,omitempty" doc:"Processing time in milliseconds"`
	Error            *string   `json:"error,omitempty" doc:"Error message if failed"`
}

// BatchComputeEmbeddingRequest asks for embeddings for multiple
// images.
type BatchComputeEmbeddingRequest struct {
	Images                []map[string]any `json:"images" doc:"List of images with 'id', 'image_data' (base64), and optional 'text_description'"`
	ComputeTextEmbeddings bool             `json:"compute_text_embeddings,omitempty" doc:"Compute text embeddings for all images"`
	ExtractOcr            bool             `json:"extract_ocr,omitempty" doc:"Extract OCR text from images"`
}

// BatchEmbeddingResult is the result for a single image in batch
// processing.
type BatchEmbeddingResult struct {
	ID              string    `json:"id" doc:"Image identifier from the request"`
	Success         bool      `json:"success" doc:"Whether embedding computation succeeded"`
	ImageEmbedding  []float64 `json:"image_embedding,omitempty" doc:"CLIP image embedding vector (512 dimensions)"`
	TextEmbedding   []float64 `json:"text_embedding,omitempty" doc:"Text embedding vector (384 dimensions)"`
	TextDescription *string   `json:"text_description,omitempty" doc:"AI-generated text description"`
	OcrText         *string   `json:"ocr_text,omitempty" doc:"Text extracted via OCR"`
	OcrConfidence   *float64  `json:"ocr_confidence,omitempty" doc:"OCR confidence score (0-1)"`
	Error           *string   `json:"error,omitempty" doc:"Error message if failed"`
}

// BatchComputeEmbeddingResponse carries batch computed embeddings.
type BatchComputeEmbeddingResponse struct {
	Success          bool                   `json:"success" doc:"Whether batch processing succeeded overall"`
	Results          []BatchEmbeddingResult `json:"results" doc:"Results for each image"`
	TotalProcessed   int                    `json:"total_processed" doc:"Total number of images processed"`
	Successful       int                    `json:"successful" doc:"Number of successful embeddings"`
	Failed           int                    `json:"failed" doc:"Number of failed embeddings"`
	ProcessingTimeMs float64                `json:"processing_time_ms,omitempty" doc:"Total processing time in milliseconds"`
}

// EmbeddingResultItem is a single embedding result from the runner.
type EmbeddingResultItem struct {
	StateImageID    string    `json:"state_image_id" doc:"ID of the state image that was processed"`
	Success         bool      `json:"success" doc:"Whether embedding generation succeeded"`
	ImageEmbedding  []float64 `json:"image_embedding,omitempty" doc:"CLIP image embedding vector (512 dimensions)"`
	TextEmbedding   []float64 `json:"text_embedding,omitempty" doc:"Text embedding vector (384 dimensions for all-MiniLM-L6-v2)"`
	TextDescription *string   `json:"text_description,omitempty" doc:"AI-generated text description of the element"`
	OcrText         *string   `json:"ocr_text,omitempty" doc:"Text extracted via OCR from the image"`
	OcrConfidence   *float64  `json:"ocr_confidence,omitempty" doc:"Confidence score of OCR extraction (0-1)"`
	Error           *string   `json:"error,omitempty" doc:"Error message if processing failed"`
}

// EmbeddingResultsRequest carries embedding results from the runner.
type EmbeddingResultsRequest struct {
	ProjectID      string                `json:"project_id" doc:"Project ID the embeddings belong to"`
	Results        []EmbeddingResultItem `json:"results" doc:"List of embedding results"`
	TotalProcessed int                   `json:"total_processed" doc:"Total number of elements processed"`
	Successful     int                   `json:"successful" doc:"Number of successfully processed elements"`
	Failed         int                   `json:"failed" doc:"Number of failed elements"`
}

// EmbeddingResultsResponse reports the outcome of applying embedding
// results.
type EmbeddingResultsResponse struct {
	Success  bool   `json:"success" doc:"Whether the sync operation succeeded"`
	Message  string `json:"message" doc:"Status message"`
	Applied  int    `json:"applied" doc:"Number of embeddings applied to config"`
	Failed   int    `json:"failed" doc:"Number of embeddings that failed to apply"`
	NotFound int    `json:"not_found" doc:"Number of state images not found in config"`
}

// RagProgressEvent is emitted during RAG processing.
type RagProgressEvent struct {
	ProjectID         string              `json:"project_id" doc:"Project ID being processed"`
	Status            RagProcessingStatus `json:"status" doc:"Current processing status"`
	Message           string              `json:"message" doc:"Human-readable status message"`
	Percent           *float64            `json:"percent,omitempty" doc:"Progress percentage (0-100)"`
	ElementsProcessed *int                `json:"elements_processed,omitempty" doc:"Number of elements processed so far"`
	TotalElements     *int                `json:"total_elements,omitempty" doc:"Total number of elements to process"`
	Error             *string             `json:"error,omitempty" doc:"Error message if failed"`
}

// RagCompletionEvent is emitted when RAG processing finishes.
type RagCompletionEvent struct {
	ProjectID      string                `json:"project_id" doc:"Project ID that was processed"`
	Success        bool                  `json:"success" doc:"Whether processing completed successfully"`
	Results        []EmbeddingResultItem `json:"results" doc:"Individual element results"`
	TotalProcessed int                   `json:"total_processed" doc:"Total elements processed"`
	Successful     int                   `json:"successful" doc:"Number of successful elements"`
	Failed         int                   `json:"failed" doc:"Number of failed elements"`
	WebSyncSuccess *bool                 `json:"web_sync_success,omitempty" doc:"Whether sync to web backend succeeded"`
	WebSyncError   *string               `json:"web_sync_error,omitempty" doc:"Error message if web sync failed"`
}

// JobSummary summarizes an embedding generation job.
type JobSummary struct {
	ID                string     `json:"id" doc:"Job UUID"`
	Status            JobStatus  `json:"status" doc:"Current job status"`
	ProgressPercent   float64    `json:"progress_percent" doc:"Progress percentage (0-100)"`
	TotalPatterns     int        `json:"total_patterns" doc:"Total patterns to process"`
	ProcessedPatterns int        `json:"processed_patterns" doc:"Patterns processed so far"`
	StartedAt         *time.Time `json:"started_at,omitempty" doc:"When the job started (UTC)"`
	ErrorMessage      *string    `json:"error_message,omitempty" doc:"Error message if job failed"`
}

// RAGDashboardStats is the summary panel of the RAG dashboard.
type RAGDashboardStats struct {
	TotalEmbeddings int         `json:"total_embeddings" doc:"Total number of indexed embeddings"`
	TotalStates     int         `json:"total_states" doc:"Number of unique states with embeddings"`
	TotalPatterns   int         `json:"total_patterns" doc:"Number of unique patterns"`
	LastSyncAt      *time.Time  `json:"last_sync_at,omitempty" doc:"When runner last synced embeddings (UTC)"`
	ActiveJob       *JobSummary `json:"active_job,omitempty" doc:"Currently running job if any"`
}

// EmbeddingItem is a single embedding record for display.
type EmbeddingItem struct {
	ID               string         `json:"id" doc:"Embedding UUID"`
	PatternID        string         `json:"pattern_id" doc:"Pattern identifier"`
	PatternName      *string        `json:"pattern_name,omitempty" doc:"Human-readable pattern name"`
	StateID          string         `json:"state_id" doc:"State identifier"`
	StateName        string         `json:"state_name" doc:"Human-readable state name"`
	ImageID          string         `json:"image_id" doc:"Image identifier"`
	ImageStoragePath string         `json:"image_storage_path" doc:"Path to image in object storage"`
	ImageURL         *string        `json:"image_url,omitempty" doc:"Presigned URL for displaying the image"`
	EmbeddingModel   string         `json:"embedding_model" doc:"Model used for embedding (e.g., clip-vit-base-patch32)"`
	EmbeddingVersion string         `json:"embedding_version" doc:"Version of the embedding model"`
	ImageWidth       int            `json:"image_width" doc:"Image width in pixels"`
	ImageHeight      int            `json:"image_height" doc:"Image height in pixels"`
	TextDescription  *string        `json:"text_description,omitempty" doc:"AI-generated or manual text description"`
	HasTextEmbedding bool           `json:"has_text_embedding,omitempty" doc:"Whether text embedding vector is available"`
	PatternMetadata  map[string]any `json:"pattern_metadata,omitempty" doc:"Additional pattern metadata"`
	CreatedAt        time.Time      `json:"created_at" doc:"When the embedding was created (UTC)"`
	UpdatedAt        time.Time      `json:"updated_at" doc:"When the embedding was last updated (UTC)"`
}

// EmbeddingListResponse is a paginated list of embeddings.
type EmbeddingListResponse struct {
	Items   []EmbeddingItem `json:"items" doc:"List of embedding items"`
	Total   int             `json:"total" doc:"Total number of embeddings matching filter"`
	Page    int             `json:"page" doc:"Current page number (1-indexed)"`
	Limit   int             `json:"limit" doc:"Items per page"`
	HasMore bool            `json:"has_more" doc:"Whether more pages exist"`
}

// JobItem is a single job record for display.
type JobItem struct {
	ID                string         `json:"id" doc:"Job UUID"`
	Status            JobStatus      `json:"status" doc:"Current job status"`
	TotalPatterns     int            `json:"total_patterns" doc:"Total patterns to process"`
	ProcessedPatterns int            `json:"processed_patterns" doc:"Patterns processed so far"`
	ProgressPercent   float64        `json:"progress_percent" doc:"Progress percentage (0-100)"`
	ErrorMessage      *string        `json:"error_message,omitempty" doc:"Error message if job failed"`
	RetryCount        int            `json:"retry_count" doc:"Number of retry attempts"`
	MaxRetries        int            `json:"max_retries" doc:"Maximum retry attempts allowed"`
	JobMetadata       map[string]any `json:"job_metadata,omitempty" doc:"Additional job metadata"`
	CreatedAt         time.Time      `json:"created_at" doc:"When the job was created (UTC)"`
	StartedAt         *time.Time     `json:"started_at,omitempty" doc:"When the job started (UTC)"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty" doc:"When the job completed (UTC)"`
}

// JobListResponse is a paginated list of jobs.
type JobListResponse struct {
	Items   []JobItem `json:"items" doc:"List of job items"`
	Total   int       `json:"total" doc:"Total number of jobs matching filter"`
	Page    int       `json:"page" doc:"Current page number (1-indexed)"`
	Limit   int       `json:"limit" doc:"Items per page"`
	HasMore bool      `json:"has_more" doc:"Whether more pages exist"`
}

// SemanticSearchRequest is a semantic search query.
type SemanticSearchRequest struct {
	Query         string  `json:"query" doc:"Search query text"`
	Limit         int     `json:"limit,omitempty" doc:"Max results to return"`
	MinSimilarity float64 `json:"min_similarity,omitempty" doc:"Minimum similarity threshold. CLIP text-to-image similarities typically range from 0.15-0.35, so 0.2 is a reasonable default."`
	StateFilter   *string `json:"state_filter,omitempty" doc:"Filter by state ID"`
}

// SearchResultItem is a single search result.
type SearchResultItem struct {
	Embedding       EmbeddingItem `json:"embedding" doc:"The matched embedding"`
	SimilarityScore float64       `json:"similarity_score" doc:"Similarity score (0-1)"`
}

// SemanticSearchResponse is the semantic search result set.
type SemanticSearchResponse struct {
	Results    []SearchResultItem `json:"results" doc:"List of search results"`
	Query      string             `json:"query" doc:"The original search query"`
	TotalFound int                `json:"total_found" doc:"Total number of results found"`
}

// StateFilterItem is a state entry for the filter dropdown.
type StateFilterItem struct {
	StateID   string `json:"state_id" doc:"State identifier"`
	StateName string `json:"state_name" doc:"Human-readable state name"`
	Count     int    `json:"count" doc:"Number of embeddings in this state"`
}

// StatesResponse lists states for filtering.
type StatesResponse struct {
	States []StateFilterItem `json:"states" doc:"List of states"`
	Count  int               `json:"count" doc:"Total number of states"`
}

// Batch lists the domain's declarations in emission order, enums
// first.
func Batch() *registry.Batch {
	return registry.NewBatch("rag",
		registry.EnumDecl("JobStatus",
			registry.Member("PENDING", "pending"),
			registry.Member("IN_PROGRESS", "in_progress"),
			registry.Member("COMPLETED", "completed"),
			registry.Member("FAILED", "failed"),
			registry.Member("CANCELLED", "cancelled"),
		),
		registry.EnumDecl("RagProcessingStatus",
			registry.Member("NOT_STARTED", "not_started"),
			registry.Member("IN_PROGRESS", "in_progress"),
			registry.Member("COMPLETED", "completed"),
			registry.Member("FAILED", "failed"),
		),
		registry.ModelDecl(ComputeTextEmbeddingRequest{}),
		registry.ModelDecl(ComputeTextEmbeddingResponse{}),
		registry.ModelDecl(ComputeEmbeddingRequest{}),
		registry.ModelDecl(ComputeEmbeddingResponse{}),
		registry.ModelDecl(BatchComputeEmbeddingRequest{}),
		registry.ModelDecl(BatchEmbeddingResult{}),
		registry.ModelDecl(BatchComputeEmbeddingResponse{}),
		registry.ModelDecl(EmbeddingResultItem{}),
		registry.ModelDecl(EmbeddingResultsRequest{}),
		registry.ModelDecl(EmbeddingResultsResponse{}),
		registry.ModelDecl(RagProgressEvent{}),
		registry.ModelDecl(RagCompletionEvent{}),
		registry.ModelDecl(JobSummary{}),
		registry.ModelDecl(RAGDashboardStats{}),
		registry.ModelDecl(EmbeddingItem{}),
		registry.ModelDecl(EmbeddingListResponse{}),
		registry.ModelDecl(JobItem{}),
		registry.ModelDecl(JobListResponse{}),
		registry.ModelDecl(SemanticSearchRequest{}),
		registry.ModelDecl(SearchResultItem{}),
		registry.ModelDecl(SemanticSearchResponse{}),
		registry.ModelDecl(StateFilterItem{}),
		registry.ModelDecl(StatesResponse{}),
	)
}
