package dto

// DomainCleanupResult per-domain outcome of the retention cleanup.
type DomainCleanupResult struct {
	Deleted int64  `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// CleanupResponse outcome of a retention cleanup run.
type CleanupResponse struct {
	Results      map[string]DomainCleanupResult `json:"results"`
	TotalDeleted int64                          `json:"total_deleted"`
	CutoffDate   string                         `json:"cutoff_date"`
}

// DomainRetentionStats counts for one domain without mutating anything.
type DomainRetentionStats struct {
	TotalEntries        int64  `json:"total_entries"`
	EligibleForDeletion int64  `json:"eligible_for_deletion"`
	Error               string `json:"error,omitempty"`
}

// RetentionStatsResponse read-only retention statistics.
type RetentionStatsResponse struct {
	Stats       map[string]DomainRetentionStats `json:"stats"`
	TotalToKeep int64                           `json:"total_to_keep"`
	CutoffDate  string                          `json:"cutoff_date"`
}

// ZeroQuantitiesRequest confirmation-gated bulk reset input.
type ZeroQuantitiesRequest struct {
	Scope   string `json:"scope"`
	Confirm string `json:"confirm"`
}

// DomainResetResult per-domain outcome of the bulk reset.
type DomainResetResult struct {
	Updated int64  `json:"updated"`
	Error   string `json:"error,omitempty"`
}

// ZeroQuantitiesResponse outcome of the bulk reset.
type ZeroQuantitiesResponse struct {
	Results      map[string]DomainResetResult `json:"results"`
	TotalUpdated int64                        `json:"total_updated"`
}
