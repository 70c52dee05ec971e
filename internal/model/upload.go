package model

// UploadPhase represents the state of the two-phase image attachment flow:
// the bytes are uploaded first, then the resulting id is attached to the
// owning creator. There is no atomicity across the phases.
type UploadPhase string

const (
	// PhaseIdle means a file may be selected but nothing has been sent.
	PhaseIdle UploadPhase = "Idle"

	// PhaseUploading means the file bytes are being sent to the backend.
	PhaseUploading UploadPhase = "Uploading"

	// PhaseAttaching means the upload succeeded and the image id is being
	// attached to the creator.
	PhaseAttaching UploadPhase = "Attaching"

	// PhaseDone means both phases completed.
	PhaseDone UploadPhase = "Done"

	// PhaseFailed means either phase failed.
	PhaseFailed UploadPhase = "Failed"
)

// String returns the string representation of UploadPhase.
func (p UploadPhase) String() string {
	return string(p)
}

// IsActive returns true while a network phase is in flight.
func (p UploadPhase) IsActive() bool {
	return p == PhaseUploading || p == PhaseAttaching
}

// IsFinished returns true once the flow reached a terminal phase.
func (p UploadPhase) IsFinished() bool {
	return p == PhaseDone || p == PhaseFailed
}
