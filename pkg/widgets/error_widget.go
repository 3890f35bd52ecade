package widgets

import (
	"github.com/go-drift/uselist/pkg/core"
	"github.com/go-drift/uselist/pkg/errors"
)

func init() {
	core.SetErrorWidgetBuilder(func(err *errors.BuildError) core.Widget {
		return ErrorWidget{Err: err}
	})
}

// ErrorWidget is shown in place of a widget whose build failed.
type ErrorWidget struct {
	core.StatelessBase
	Err *errors.BuildError
}

// Build renders the error message as text.
func (e ErrorWidget) Build(ctx core.BuildContext) core.Widget {
	if e.Err == nil {
		return Text{Content: "build failed"}
	}
	return Text{Content: e.Err.Error()}
}
