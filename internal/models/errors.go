package models

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is returned when the entity store cannot be reached.
var ErrStoreUnavailable = errors.New("entity store unavailable")

// NotFoundError is returned when a lookup by identifier misses.
type NotFoundError struct {
	Entity Entity
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// UnknownMetricError is reported for a metric name that is not registered.
type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %q", e.Name)
}
