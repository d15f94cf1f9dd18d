package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/richardlehane/mscfb"
	"github.com/tobgu/qframe"
	"github.com/xuri/excelize/v2"
)

var (
	errEncryptedWorkbook = errors.New("workbook is password protected")
	errNoWorkbookStream  = errors.New("compound file holds no workbook stream")
	errNoSheet           = errors.New("workbook has no sheets")
)

// oleSignature prefixes every compound file: BIFF workbooks and encrypted
// OOXML packages alike.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

func readExcel(content []byte) (qframe.QFrame, error) {
	if bytes.HasPrefix(content, oleSignature) {
		if err := inspectCompound(content); err != nil {
			return qframe.QFrame{}, err
		}
		return readBIFF(content)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return qframe.QFrame{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return qframe.QFrame{}, errNoSheet
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return qframe.QFrame{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	return frameFromRows(rows), nil
}

// inspectCompound checks that a compound file is a readable BIFF workbook:
// it holds a Workbook (or BIFF5 Book) stream and is not encrypted.
func inspectCompound(content []byte) error {
	doc, err := mscfb.New(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("read compound file: %w", err)
	}

	found := false
	for {
		entry, err := doc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read compound file: %w", err)
		}

		switch entry.Name {
		case "EncryptedPackage", "EncryptionInfo":
			return errEncryptedWorkbook
		case "Workbook", "Book":
			found = true
		}
	}

	if !found {
		return errNoWorkbookStream
	}
	return nil
}

// readBIFF reads the first sheet of a legacy .xls workbook. The BIFF
// reader panics on records it cannot follow, so a panic is reported as a
// malformed workbook.
func readBIFF(content []byte) (qf qframe.QFrame, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed xls workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return qframe.QFrame{}, fmt.Errorf("read xls workbook: %w", err)
	}
	if wb == nil {
		return qframe.QFrame{}, errNoWorkbookStream
	}
	if wb.NumSheets() == 0 {
		return qframe.QFrame{}, errNoSheet
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return qframe.QFrame{}, errNoSheet
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		rows = append(rows, biffRow(sheet, i))
	}
	return frameFromRows(rows), nil
}

// biffRow returns the cells of row i, or nil when the sheet has no such
// row.
func biffRow(sheet *xls.WorkSheet, i int) (cells []string) {
	defer func() {
		if recover() != nil {
			cells = nil
		}
	}()

	row := sheet.Row(i)
	cells = make([]string, row.LastCol())
	for j := row.FirstCol(); j < row.LastCol(); j++ {
		cells[j] = row.Col(j)
	}
	return cells
}
