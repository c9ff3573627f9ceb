package pypower

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/huandalu/pypower/types"
)

// RegisterUserFcn appends an extension callback for the named stage and
// returns its registration handle. Callbacks for a stage run in
// registration order.
func RegisterUserFcn(c *types.Case, stage string, fn types.UserFcnFunc) uuid.UUID {
	id := uuid.New()
	c.UserFcns = append(c.UserFcns, types.UserFcn{ID: id, Stage: stage, Fn: fn})
	return id
}

// RemoveUserFcn deletes the callback registered under id. It reports
// whether a callback was removed.
func RemoveUserFcn(c *types.Case, id uuid.UUID) bool {
	for i, fn := range c.UserFcns {
		if fn.ID == id {
			c.UserFcns = append(c.UserFcns[:i], c.UserFcns[i+1:]...)
			return true
		}
	}
	return false
}

// RunUserFcns runs the callbacks registered for the named stage, in
// registration order, threading the case through them. A callback may
// return a replacement case; returning nil keeps the current one. The first
// callback error aborts the run.
func RunUserFcns(c *types.Case, stage string) (*types.Case, error) {
	for _, fn := range c.UserFcns {
		if fn.Stage != stage || fn.Fn == nil {
			continue
		}
		next, err := fn.Fn(c)
		if err != nil {
			return c, fmt.Errorf("pypower: %s callback %s: %w", stage, fn.ID, err)
		}
		if next != nil {
			c = next
		}
	}
	return c, nil
}
