package logging

import (
	"context"

	"github.com/alexisbeaulieu97/learner/internal/ports"
)

// Discard drops every entry. Commands fall back to it when no logger has been
// configured yet.
type Discard struct{}

func (Discard) Debug(context.Context, string, ...interface{}) {}
func (Discard) Info(context.Context, string, ...interface{})  {}
func (Discard) Warn(context.Context, string, ...interface{})  {}
func (Discard) Error(context.Context, string, ...interface{}) {}
func (d Discard) With(...interface{}) ports.Logger            { return d }

var _ ports.Logger = Discard{}
