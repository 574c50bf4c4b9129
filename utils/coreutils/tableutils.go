package coreutils

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"golang.org/x/term"
)

// PrintTable writes a slice of rows as a table to out.
// The parameter rows MUST be a slice of structs, otherwise the method panics.
// Only fields tagged with 'col-name' are printed, the tag value is the column header.
// The 'col-max-width' tag limits the width of a column, longer content is broken into several lines.
//
// Example:
//
//	type commandRow struct {
//	    Name    string `col-name:"Command"`
//	    Summary string `col-name:"Summary" col-max-width:"40"`
//	}
//
// If rows is empty, emptyTableMessage is printed in a frame instead.
func PrintTable(out io.Writer, rows interface{}, title string, emptyTableMessage string) error {
	if title != "" {
		if _, err := fmt.Fprintln(out, title); err != nil {
			return errorutils.CheckError(err)
		}
	}

	rowsSliceValue := reflect.ValueOf(rows)
	if rowsSliceValue.Len() == 0 && emptyTableMessage != "" {
		PrintMessage(out, emptyTableMessage)
		return nil
	}

	tableWriter := newTableWriter(out)
	rowType := reflect.TypeOf(rows).Elem()
	var columnsNames table.Row
	var fieldsIndexes []int
	var columnConfigs []table.ColumnConfig
	for i := 0; i < rowType.NumField(); i++ {
		field := rowType.Field(i)
		columnName, columnNameExist := field.Tag.Lookup("col-name")
		if !columnNameExist {
			continue
		}
		columnsNames = append(columnsNames, columnName)
		fieldsIndexes = append(fieldsIndexes, i)
		if columnMaxWidth, columnMaxWidthExist := field.Tag.Lookup("col-max-width"); columnMaxWidthExist {
			columnMaxWidthValue, err := strconv.Atoi(columnMaxWidth)
			if err != nil {
				return errorutils.CheckError(err)
			}
			columnConfigs = append(columnConfigs, table.ColumnConfig{Name: columnName, WidthMax: columnMaxWidthValue})
		}
	}
	tableWriter.AppendHeader(columnsNames)
	tableWriter.SetColumnConfigs(columnConfigs)

	for i := 0; i < rowsSliceValue.Len(); i++ {
		var rowValues table.Row
		currRowValue := rowsSliceValue.Index(i)
		for _, fieldIndex := range fieldsIndexes {
			rowValues = append(rowValues, cellString(currRowValue.Field(fieldIndex)))
		}
		tableWriter.AppendRow(rowValues)
	}

	tableWriter.Render()
	return nil
}

func cellString(value reflect.Value) string {
	if value.Kind() == reflect.Slice {
		var cells []string
		for i := 0; i < value.Len(); i++ {
			cells = append(cells, fmt.Sprint(value.Index(i).Interface()))
		}
		return strings.Join(cells, ", ")
	}
	return fmt.Sprint(value.Interface())
}

// PrintMessage prints message in a frame (which is actually a table with a single cell).
// For example:
// ┌─────────────────────────────────────────┐
// │ An example of a message in a nice frame │
// └─────────────────────────────────────────┘
func PrintMessage(out io.Writer, message string) {
	tableWriter := newTableWriter(out)
	tableWriter.AppendRow(table.Row{message})
	tableWriter.Render()
}

func newTableWriter(out io.Writer) table.Writer {
	tableWriter := table.NewWriter()
	tableWriter.SetOutputMirror(out)
	if IsTerminal() {
		tableWriter.SetStyle(table.StyleLight)
	}
	return tableWriter
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
