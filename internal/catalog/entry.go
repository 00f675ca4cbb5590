package catalog

import "strings"

// Kind discriminates the two entry variants.
type Kind string

const (
	KindRecording Kind = "recording"
	KindDownload  Kind = "download"
)

// Field identifies a per-entry sortable attribute.
type Field string

const (
	FieldTitle      Field = "title"
	FieldChannel    Field = "channel"
	FieldDate       Field = "date"
	FieldTime       Field = "time"
	FieldSize       Field = "size"
	FieldDuration   Field = "duration"
	FieldResolution Field = "resolution"
	FieldGood       Field = "good"
	FieldDropped    Field = "dropped"
	FieldMastered   Field = "mastered"
)

// Value is a sort value; exactly one of Text or Num is meaningful.
type Value struct {
	Text   string
	Num    int64
	IsText bool
}

// Compare orders v against other: -1, 0, or 1.
func (v Value) Compare(other Value) int {
	if v.IsText {
		return strings.Compare(v.Text, other.Text)
	}
	switch {
	case v.Num < other.Num:
		return -1
	case v.Num > other.Num:
		return 1
	default:
		return 0
	}
}

func textValue(s string) Value { return Value{Text: s, IsText: true} }
func numValue(n int64) Value   { return Value{Num: n} }

// boolValue maps a flag so set flags order ahead of unset ones under an
// ascending sort, matching the attribute columns in the summary line.
func boolValue(flag bool) Value {
	if flag {
		return Value{Num: 0}
	}
	return Value{Num: 1}
}

// Entry is the closed capability interface over Recording and Download.
type Entry interface {
	Kind() Kind
	// Identity is the file basename, unique within the variant's namespace.
	Identity() string
	GroupKey() string
	// Summary renders the fixed-width catalog line for display.
	Summary() string
	// HD reports whether the video height reaches 720 lines.
	HD() bool
	// SortValue answers a sort-value query for a recognized field. Variants
	// lacking the field return their neutral default so a heterogeneous
	// collection can be merged into one total order.
	SortValue(Field) Value
}
