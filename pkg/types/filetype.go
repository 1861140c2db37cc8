package types

// UnknownCategory is the directory name used for files whose type could not be sniffed.
const UnknownCategory = "unknown"

// FileType is the outcome of classifying a single path.
// An empty MIME means the signature oracle found nothing; an empty Ext
// means no extension could be resolved for a known MIME.
type FileType struct {
	MIME string
	Ext  string
}

// UnknownFileType returns the FileType for paths the oracle could not sniff.
func UnknownFileType() FileType {
	return FileType{}
}

// IsUnknown reports whether no MIME type was found.
func (f FileType) IsUnknown() bool {
	return f.MIME == ""
}

// HasExt reports whether an extension was resolved.
func (f FileType) HasExt() bool {
	return f.Ext != ""
}

// Category is the output directory name for this type.
func (f FileType) Category() string {
	if f.IsUnknown() {
		return UnknownCategory
	}
	return f.MIME
}

func (f FileType) String() string {
	if f.IsUnknown() {
		return UnknownCategory
	}
	if !f.HasExt() {
		return f.MIME
	}
	return f.MIME + " (." + f.Ext + ")"
}
