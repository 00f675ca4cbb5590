package catalog

import (
	"fmt"

	"dvrshelf/internal/media"
)

// Download is a separately sourced media file. Identity is the file basename
// without extension. Downloads carry no drop/good/mastered state; for sorting
// they behave as always good, never dropped, never mastered.
type Download struct {
	// BasePath is the extensionless path of the file while it exists on disk.
	BasePath string

	FileBasename  string
	FileExtension string
	FileSize      int64

	Source      string
	Title       string
	Description string

	Video media.Metrics

	Group   string
	Comment string
}

func (d *Download) Kind() Kind       { return KindDownload }
func (d *Download) Identity() string { return d.FileBasename }
func (d *Download) GroupKey() string { return d.Group }
func (d *Download) HD() bool         { return d.Video.Height >= 720 }

// Summary renders the fixed-width catalog line. The attribute column shows
// the fixed " GM" prefix so downloads line up with recordings.
func (d *Download) Summary() string {
	return fmt.Sprintf(" GM%s | %-24s | %4.1f GiB | %3d' |        --- | %-45s | %s",
		string(flagChar(d.Comment != "", 'C')),
		fitString(d.Source, 24, 2),
		toGiB(d.FileSize),
		d.Video.Duration/60,
		fitString(d.Title, 45, 7),
		d.Description,
	)
}

// SortValue answers sort-value queries, substituting the neutral defaults for
// fields downloads do not track.
func (d *Download) SortValue(field Field) Value {
	switch field {
	case FieldTitle:
		return textValue(d.Group)
	case FieldChannel:
		return textValue(d.Source)
	case FieldDate, FieldTime:
		return textValue("")
	case FieldSize:
		return numValue(d.FileSize)
	case FieldDuration:
		return numValue(int64(d.Video.Duration))
	case FieldResolution:
		return numValue(int64(d.Video.Height))
	case FieldGood:
		return boolValue(true)
	case FieldDropped:
		return boolValue(false)
	case FieldMastered:
		return boolValue(false)
	default:
		return Value{}
	}
}
