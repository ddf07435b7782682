package entity

import "github.com/google/uuid"

// Classification is the dedup verdict for an incoming (owner, content hash) pair.
type Classification string

const (
	ClassificationNew                 Classification = "NEW"
	ClassificationLiveDuplicate       Classification = "LIVE_DUPLICATE"
	ClassificationRestorableDuplicate Classification = "RESTORABLE_DUPLICATE"
)

// CrossOwnerHint notes that other accounts already hold the same bytes.
// Informational only: it never suppresses ingestion for the requesting owner.
type CrossOwnerHint struct {
	OwnerIDs []uuid.UUID `json:"owner_ids"`
}

// ClassifyResult is the outcome of classifying one incoming file.
// Invoice is the freshly created row for NEW, or the existing row for
// either duplicate kind.
type ClassifyResult struct {
	Classification Classification  `json:"classification"`
	Invoice        *Invoice        `json:"invoice"`
	CrossOwner     *CrossOwnerHint `json:"cross_owner,omitempty"`
}
