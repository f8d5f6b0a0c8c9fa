package models

// Known scan regions. Stored as supplied by the client; these constants
// cover every value the upload form currently sends.
const (
	RegionFrontal   = "Frontal"
	RegionUpperArch = "Upper Arch"
	RegionLowerArch = "Lower Arch"
)

// ScanTypeRGB is the only scan type produced by current scanners.
const ScanTypeRGB = "RGB"

// ScanDB represents a scan record in the database.
// UploadDate is an RFC3339 UTC string, so lexicographic order is
// chronological order.
type ScanDB struct {
	ID          int64  `json:"id" db:"id"`                    // Primary key
	PatientName string `json:"patientName" db:"patient_name"` // Patient full name
	PatientID   string `json:"patientId" db:"patient_id"`     // External patient identifier
	ScanType    string `json:"scanType" db:"scan_type"`       // Currently always "RGB"
	Region      string `json:"region" db:"region"`            // Frontal, Upper Arch or Lower Arch
	ImageURL    string `json:"imageUrl" db:"image_url"`       // Public URL of the stored image
	UploadDate  string `json:"uploadDate" db:"upload_date"`   // RFC3339 UTC upload timestamp
}
