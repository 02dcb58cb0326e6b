package dispatch

// buildPipeline composes the provided middleware around the terminal handler.
// Composition is inside-out, so the first middleware in the slice is the
// first to run.
func buildPipeline(ctx *Context, middleware []Middleware, terminal Next) Next {
	next := terminal

	for i := len(middleware) - 1; i >= 0; i-- {
		mw, downstream := middleware[i], next
		next = func() error {
			return mw.Handle(ctx, downstream)
		}
	}

	return next
}
