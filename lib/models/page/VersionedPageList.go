package page

// DataFormatVersion identifies the layout of an exported page list.
type DataFormatVersion int

const (
	V202503 DataFormatVersion = 202503

	CurrentDataFormatVersion = V202503
)

func (v DataFormatVersion) Supported() bool {
	return v == V202503
}

// TypedPage is one entry of an import or export document. Page is nil when the
// exporting wiki had no page in that slot.
type TypedPage struct {
	Kind PageType `json:"kind"`
	Page *Page    `json:"page"`
}

// VersionedPageList is the import/export document.
type VersionedPageList struct {
	Version DataFormatVersion `json:"version" validate:"required"`
	Pages   []TypedPage       `json:"pages" validate:"dive"`
}
