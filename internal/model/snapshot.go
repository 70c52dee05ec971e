package model

// StoreStatus represents the fetch state of the creator collection.
type StoreStatus string

const (
	// StatusIdle means the snapshot reflects the last successful fetch.
	StatusIdle StoreStatus = "Idle"

	// StatusLoading means a list request is in flight.
	StatusLoading StoreStatus = "Loading"

	// StatusError means the last list request failed.
	StatusError StoreStatus = "Error"
)

// String returns the string representation of StoreStatus.
func (ss StoreStatus) String() string {
	return string(ss)
}

// IsLoading returns true while a list request is in flight.
func (ss StoreStatus) IsLoading() bool {
	return ss == StatusLoading
}

// CollectionSnapshot is the store's wholesale-replaced view of the remote
// creator collection at a point in time. It is never merged partially; every
// successful fetch replaces it outright.
type CollectionSnapshot struct {
	Creators []Creator
	Status   StoreStatus
	Err      string // human-readable message when Status is StatusError
}

// Find returns the creator with the given id, if present.
func (s CollectionSnapshot) Find(id string) (Creator, bool) {
	for _, c := range s.Creators {
		if c.ID == id {
			return c, true
		}
	}
	return Creator{}, false
}
