package catalog

import (
	"fmt"
	"strings"
	"time"

	"dvrshelf/internal/media"
)

// TimestampLayout is the wire format for recording timestamps, both in the
// store and in summary lines.
const TimestampLayout = "2006-01-02 15:04"

// Recording is a capture from the broadcast receiver. Identity is the file
// basename without extension.
type Recording struct {
	// BasePath is the extensionless path of the source file while it exists
	// on disk. Empty for mastered recordings whose files have been removed.
	BasePath string

	FileBasename string
	FileSize     int64

	EPGChannel     string
	EPGTitle       string
	EPGDescription string

	Video media.Metrics

	Good     bool
	Dropped  bool
	Mastered bool

	Group     string
	Comment   string
	Timestamp string
}

func (r *Recording) Kind() Kind       { return KindRecording }
func (r *Recording) Identity() string { return r.FileBasename }
func (r *Recording) GroupKey() string { return r.Group }
func (r *Recording) HD() bool         { return r.Video.Height >= 720 }

// flags renders the four-character attribute column: dropped, good, mastered,
// commented.
func (r *Recording) flags() string {
	var b strings.Builder
	b.WriteByte(flagChar(r.Dropped, 'D'))
	b.WriteByte(flagChar(r.Good, 'G'))
	b.WriteByte(flagChar(r.Mastered, 'M'))
	b.WriteByte(flagChar(r.Comment != "", 'C'))
	return b.String()
}

// endTime derives the wall-clock end of the recording from its start
// timestamp and measured duration.
func (r *Recording) endTime() string {
	start, err := time.Parse(TimestampLayout, r.Timestamp)
	if err != nil {
		return "--:--"
	}
	return start.Add(time.Duration(r.Video.Duration) * time.Second).Format("15:04")
}

// Summary renders the fixed-width catalog line.
func (r *Recording) Summary() string {
	return fmt.Sprintf("%s | %s - %s | %4.1f GiB | %3d' | %-10s | %-45s | %s",
		r.flags(),
		r.Timestamp,
		r.endTime(),
		toGiB(r.FileSize),
		r.Video.Duration/60,
		fitString(r.EPGChannel, 10, 2),
		fitString(r.EPGTitle, 45, 7),
		r.EPGDescription,
	)
}

// SortValue answers sort-value queries for every recognized field.
func (r *Recording) SortValue(field Field) Value {
	switch field {
	case FieldTitle:
		return textValue(r.Group)
	case FieldChannel:
		return textValue(r.EPGChannel)
	case FieldDate:
		return textValue(r.Timestamp)
	case FieldTime:
		return textValue(timeOfDay(r.Timestamp))
	case FieldSize:
		return numValue(r.FileSize)
	case FieldDuration:
		return numValue(int64(r.Video.Duration))
	case FieldResolution:
		return numValue(int64(r.Video.Height))
	case FieldGood:
		return boolValue(r.Good)
	case FieldDropped:
		return boolValue(r.Dropped)
	case FieldMastered:
		return boolValue(r.Mastered)
	default:
		return Value{}
	}
}

// timeOfDay extracts the HH:MM portion of a timestamp, or "" when absent.
func timeOfDay(timestamp string) string {
	_, clock, ok := strings.Cut(timestamp, " ")
	if !ok {
		return ""
	}
	return clock
}

func flagChar(set bool, c byte) byte {
	if set {
		return c
	}
	return '.'
}
