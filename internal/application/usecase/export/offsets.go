package export

// RowOffsets holds the 1-indexed row numbers of a sheet section. Every
// formula string is built from these offsets; inlining the arithmetic at
// call sites is how off-by-one bugs silently corrupt cell references.
type RowOffsets struct {
	HeaderRow    int
	FirstDataRow int
	LastDataRow  int
	TotalsRow    int
	AveragesRow  int
}

// RowOffsetsFor computes the row layout for a sheet with dataLen data rows:
// header on row 1, data on rows 2..dataLen+1, totals and averages directly
// below. With zero data rows LastDataRow collapses onto the header row and
// no formula must be emitted.
func RowOffsetsFor(dataLen int) RowOffsets {
	return RowOffsets{
		HeaderRow:    1,
		FirstDataRow: 2,
		LastDataRow:  1 + dataLen,
		TotalsRow:    2 + dataLen,
		AveragesRow:  3 + dataLen,
	}
}
