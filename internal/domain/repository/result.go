package repository

// UpdateResult carries the storage engine's update acknowledgment counts.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// DeleteResult carries the delete acknowledgment. Deleted may be zero; the
// operation still succeeded.
type DeleteResult struct {
	Deleted int64
}
