package export

import (
	"encoding/csv"
	"io"

	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/queries"
)

// utf8BOM lets spreadsheet tools detect the encoding of Cyrillic headers.
const utf8BOM = "\ufeff"

type CSVEncoder struct {
	comma rune
	bom   bool
}

func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{comma: ',', bom: true}
}

func (e *CSVEncoder) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (e *CSVEncoder) EncodeTable(w io.Writer, t queries.Table) error {
	if e.bom {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return errs.Wrap(err, "failed to write csv preamble")
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = e.comma
	if err := cw.Write(t.Columns); err != nil {
		return errs.Wrapf(err, "failed to write %s header", t.Name)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return errs.Wrapf(err, "failed to write %s rows", t.Name)
	}
	return nil
}
