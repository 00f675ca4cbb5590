package session

import (
	"context"
	"fmt"

	"dvrshelf/internal/catalog"
)

// ApplyIf applies update to every entry in the selection that satisfies pred,
// persisting each changed entry through the store, and returns the entries
// that changed. Entries failing pred are silently left alone; that is how the
// flag exclusion rules surface to batch edits. The batch is not atomic: a
// persistence failure stops the walk but does not roll back earlier entries.
func (s *Session) ApplyIf(ctx context.Context, selection []catalog.Entry, pred func(catalog.Entry) bool, update func(catalog.Entry)) ([]catalog.Entry, error) {
	var changed []catalog.Entry
	for _, e := range selection {
		if !pred(e) {
			continue
		}
		update(e)

		var err error
		switch entry := e.(type) {
		case *catalog.Recording:
			err = s.store.SaveRecording(ctx, entry)
		case *catalog.Download:
			err = s.store.SaveDownload(ctx, entry)
		default:
			err = fmt.Errorf("unknown entry kind %q", e.Kind())
		}
		if err != nil {
			return changed, err
		}
		changed = append(changed, e)
	}
	return changed, nil
}

// recordingPred lifts a recording predicate over the entry interface;
// downloads never match.
func recordingPred(pred func(*catalog.Recording) bool) func(catalog.Entry) bool {
	return func(e catalog.Entry) bool {
		rec, ok := e.(*catalog.Recording)
		return ok && pred(rec)
	}
}

func recordingUpdate(update func(*catalog.Recording)) func(catalog.Entry) {
	return func(e catalog.Entry) {
		if rec, ok := e.(*catalog.Recording); ok {
			update(rec)
		}
	}
}

// MarkDropped flags recordings for removal. A mastered recording cannot be
// dropped; it silently stays untouched.
func (s *Session) MarkDropped(ctx context.Context, selection []catalog.Entry) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		recordingPred(func(r *catalog.Recording) bool { return !r.Mastered }),
		recordingUpdate(func(r *catalog.Recording) { r.Dropped = true }))
}

// UnmarkDropped clears the drop flag on recordings that carry it.
func (s *Session) UnmarkDropped(ctx context.Context, selection []catalog.Entry) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		recordingPred(func(r *catalog.Recording) bool { return r.Dropped }),
		recordingUpdate(func(r *catalog.Recording) { r.Dropped = false }))
}

// MarkGood flags recordings as good.
func (s *Session) MarkGood(ctx context.Context, selection []catalog.Entry) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		recordingPred(func(r *catalog.Recording) bool { return !r.Good }),
		recordingUpdate(func(r *catalog.Recording) { r.Good = true }))
}

// UnmarkGood clears the good flag.
func (s *Session) UnmarkGood(ctx context.Context, selection []catalog.Entry) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		recordingPred(func(r *catalog.Recording) bool { return r.Good }),
		recordingUpdate(func(r *catalog.Recording) { r.Good = false }))
}

// MarkMastered flags recordings as archived elsewhere. A dropped recording
// cannot be mastered; it silently stays untouched.
func (s *Session) MarkMastered(ctx context.Context, selection []catalog.Entry) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		recordingPred(func(r *catalog.Recording) bool { return !r.Dropped }),
		recordingUpdate(func(r *catalog.Recording) { r.Mastered = true }))
}

// UnmarkMastered clears the mastered flag.
func (s *Session) UnmarkMastered(ctx context.Context, selection []catalog.Entry) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		recordingPred(func(r *catalog.Recording) bool { return r.Mastered }),
		recordingUpdate(func(r *catalog.Recording) { r.Mastered = false }))
}

// SetComment replaces the comment on every selected entry, both variants.
func (s *Session) SetComment(ctx context.Context, selection []catalog.Entry, comment string) ([]catalog.Entry, error) {
	return s.ApplyIf(ctx, selection,
		func(catalog.Entry) bool { return true },
		func(e catalog.Entry) {
			switch entry := e.(type) {
			case *catalog.Recording:
				entry.Comment = comment
			case *catalog.Download:
				entry.Comment = comment
			}
		})
}
