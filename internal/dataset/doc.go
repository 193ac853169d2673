// Package dataset loads contact spreadsheets into header-keyed rows.
//
// CSV and TSV files are read with encoding/csv; Excel workbooks (.xlsx,
// .xlsm) are read with excelize. Both paths feed the same normaliser, so a
// workbook and its CSV export produce identical datasets.
//
// # Normalisation
//
//   - A UTF-8 byte order mark at the start of the input is ignored.
//   - Rows whose cells are all blank are skipped.
//   - With HasHeader, the first non-empty row names the columns. Blank
//     header cells become colN and repeated names get _1, _2 suffixes.
//   - Without HasHeader, columns are col1..colN where N is the widest row.
//   - Short rows are padded with "" and long rows truncated; both produce a
//     ParseWarning but never fail the load.
//
// # Usage
//
//	ds, err := dataset.Load("contacts.csv", dataset.Options{HasHeader: true})
//	if err != nil {
//	    return err
//	}
//	for _, w := range ds.Warnings {
//	    fmt.Println(w)
//	}
//	fmt.Println(ds.Len(), "rows:", strings.Join(ds.Columns, ", "))
package dataset
