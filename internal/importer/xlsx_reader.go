package importer

import (
	"net/http"
	"os"

	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/apperror"

	"github.com/xuri/excelize/v2"
)

// RowReader yields the raw cell rows of a spreadsheet, header included.
type RowReader interface {
	Rows() ([][]string, error)
	Close() error
}

type xlsxReader struct {
	file *excelize.File
}

// OpenXLSX opens the workbook at path and reads from its first sheet.
func OpenXLSX(path string) (RowReader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperror.New(
			apperror.CodeNotFound,
			"Excel file not found: "+path,
			http.StatusNotFound,
		)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Could not open Excel file",
			http.StatusBadRequest,
		)
	}

	return &xlsxReader{file: file}, nil
}

func (r *xlsxReader) Rows() ([][]string, error) {
	sheets := r.file.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.New(
			apperror.CodeInvalidInput,
			"Excel file has no worksheets",
			http.StatusBadRequest,
		)
	}

	rows, err := r.file.GetRows(sheets[0])
	if err != nil {
		return nil, apperror.Wrap(
			err,
			apperror.CodeInvalidInput,
			"Could not read worksheet rows",
			http.StatusBadRequest,
		)
	}
	return rows, nil
}

func (r *xlsxReader) Close() error {
	return r.file.Close()
}
