package postgres

import "context"

// TrackNew records an inserted row on the session carried by ctx.
// Writes made outside a session are not tracked.
func TrackNew(ctx context.Context, row any) { track(ctx, ChangeNew, row) }

// TrackDirty records an updated row on the session carried by ctx.
func TrackDirty(ctx context.Context, row any) { track(ctx, ChangeDirty, row) }

// TrackDeleted records a deleted row on the session carried by ctx.
func TrackDeleted(ctx context.Context, row any) { track(ctx, ChangeDeleted, row) }

func track(ctx context.Context, kind ChangeKind, row any) {
	if s, ok := SessionFromCtx(ctx); ok {
		s.Track(kind, row)
	}
}
